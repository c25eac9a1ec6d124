package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cyb3rnet/xhtml/internal/blueprint"
	"github.com/cyb3rnet/xhtml/internal/config"
	"github.com/cyb3rnet/xhtml/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		lang     string
		encoding string
		doctype  string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create xhtml.json and a sample blueprint",
		Long: `Create xhtml.json and a sample page.yaml in the given directory
(default: the working directory).

Examples:
  xhtml init
  xhtml init site --lang=fr --encoding=latin1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, lang, encoding, doctype, force)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", config.DefaultLang, "Document language")
	cmd.Flags().StringVar(&encoding, "encoding", config.DefaultEncoding, "Output character encoding")
	cmd.Flags().StringVar(&doctype, "doctype", "", "Document type (default: xhtml1-strict)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")

	return cmd
}

func runInit(cmd *cobra.Command, dir, lang, encoding, doctype string, force bool) error {
	out := cmd.OutOrStdout()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.New(errors.CodeWriteFailed).Wrap(err)
	}
	if config.Exists(dir) && !force {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail(config.ConfigFileName + " already exists in " + dir).
			WithSuggestion("Use --force to overwrite it")
	}

	cfg := config.New()
	cfg.Name = filepath.Base(absDir(dir))
	cfg.Lang = lang
	cfg.Encoding = encoding
	cfg.Doctype = doctype
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		return err
	}
	success(out, "Created %s", config.ConfigFileName)

	bpPath := cfg.BlueprintPath()
	if _, err := os.Stat(bpPath); err == nil && !force {
		warn(out, "%s exists, leaving it untouched", filepath.Base(bpPath))
	} else {
		if err := os.WriteFile(bpPath, []byte(blueprint.Sample), 0o644); err != nil {
			return errors.New(errors.CodeWriteFailed).Wrap(err)
		}
		success(out, "Created %s", filepath.Base(bpPath))
	}

	info(out, "Run 'xhtml build' to generate %s", cfg.Output)
	return nil
}

func absDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

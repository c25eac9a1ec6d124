package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyb3rnet/xhtml/internal/errors"
	"github.com/cyb3rnet/xhtml/pkg/render"
)

func buildCmd(flags *globalFlags) *cobra.Command {
	var (
		output string
		stdout bool
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the document",
		Long: `Build the blueprint into a document and write it to the output
file in the configured encoding.

Examples:
  xhtml build
  xhtml build --output=public/index.html
  xhtml build --stdout --check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, flags, output, stdout, check)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default from xhtml.json)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write the document to stdout")
	cmd.Flags().BoolVar(&check, "check", false, "Fail unless the document is well-formed")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *globalFlags, output string, stdout, check bool) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	d, err := assemble(ctx, cfg)
	if err != nil {
		return err
	}

	if check {
		doc, err := d.Generate()
		if err != nil {
			return err
		}
		if _, err := render.CheckWellFormed(doc); err != nil {
			return err
		}
	}

	body, err := encode(d)
	if err != nil {
		return err
	}

	if stdout {
		if _, err := cmd.OutOrStdout().Write(body); err != nil {
			return errors.New(errors.CodeWriteFailed).Wrap(err)
		}
		return nil
	}

	// A flag path is relative to the working directory, a configured one
	// to the project root.
	path := cfg.OutputPath()
	if output != "" {
		path = output
	}
	if err := writeFile(path, body); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	success(out, "Built %s in %s", path, time.Since(start).Round(time.Millisecond))
	info(out, "%s, %s, %d elements", formatBytes(int64(len(body))), d.Charset(), len(d.Tags()))
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.New(errors.CodeWriteFailed).WithDetail(path).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(errors.CodeWriteFailed).WithDetail(path).Wrap(err)
	}
	return nil
}

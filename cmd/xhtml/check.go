package main

import (
	"github.com/spf13/cobra"

	"github.com/cyb3rnet/xhtml/pkg/render"
)

func checkCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the document is well-formed",
		Long: `Build the document in memory and parse it as XML. Nothing is
written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			d, err := assemble(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			doc, err := d.Generate()
			if err != nil {
				return err
			}
			root, err := render.CheckWellFormed(doc)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "%s is well-formed (root <%s>, %d elements)", cfg.BlueprintPath(), root, len(d.Tags()))
			return nil
		},
	}
}


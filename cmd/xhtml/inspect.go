package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func inspectCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the element registry as a tree",
		Long: `Build the document and print every registered element in
creation order with its attributes and content size.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			d, err := assemble(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), d.Tree())
			return nil
		},
	}
}

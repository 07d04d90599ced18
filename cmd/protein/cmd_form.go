package main

import (
	"fmt"

	"ProteinCalculator/internal/tui"

	"github.com/spf13/cobra"
)

func newFormCmd() *cobra.Command {
	var flags inputFlags
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Interactive calculator form",
		Long:  "Opens the calculator as a terminal form. The summary line is printed on exit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := baseInput()
			if err != nil {
				return err
			}
			in, err := flags.apply(cmd.Flags(), base)
			if err != nil {
				return err
			}
			final, err := tui.Run(in)
			if err != nil {
				return fmt.Errorf("form: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), final.Summary())
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

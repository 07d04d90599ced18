package main

import (
	"fmt"

	"ProteinCalculator/internal/reference"
	"ProteinCalculator/internal/render"

	"github.com/spf13/cobra"
)

var (
	referencesStyle string
	referencesRaw   bool
)

var referencesCmd = &cobra.Command{
	Use:   "references",
	Short: "Show reference ranges and the disclaimer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := reference.Load()
		if err != nil {
			return err
		}
		md := content.Markdown()
		if referencesRaw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}
		out, err := render.Markdown(md, referencesStyle, 80)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	referencesCmd.Flags().StringVar(&referencesStyle, "style", "auto", "glamour style: auto, dark, light or notty")
	referencesCmd.Flags().BoolVar(&referencesRaw, "raw", false, "print markdown without rendering")
}

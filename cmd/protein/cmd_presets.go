package main

import (
	"fmt"

	"ProteinCalculator/internal/estimator"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	keyColumn  = lipgloss.NewStyle().Width(14)
	nameColumn = lipgloss.NewStyle().Width(30)
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the quick factor presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, presetRow("KEY", "NAME", "FACTOR"))
		for _, p := range estimator.Presets() {
			fmt.Fprintln(out, presetRow(p.Key, p.Name, estimator.FactorLabel(p.Factor)))
		}
		return nil
	},
}

func presetRow(key, name, factor string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, keyColumn.Render(key), nameColumn.Render(name), factor)
}

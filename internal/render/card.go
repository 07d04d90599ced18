// Package render draws estimates and reference text for the terminal.
package render

import (
	"strings"

	"ProteinCalculator/internal/estimator"
	"ProteinCalculator/internal/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#F59E0B")
	muted  = lipgloss.Color("#64748B")
	warn   = lipgloss.Color("#B45309")

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle = lipgloss.NewStyle().Foreground(muted)
	valueStyle = lipgloss.NewStyle().Bold(true)
	noteStyle  = lipgloss.NewStyle().Foreground(warn).Italic(true)
)

const labelWidth = 26

// Card renders the result card for one estimate.
func Card(in estimator.Input, out estimator.Output) string {
	d := models.NewDisplay(in, out)

	weight := d.WeightKg
	if d.PoundsHint != "" {
		weight = estimator.FormatNumber(in.Weight) + " lb = " + d.WeightKg
	}

	rows := []string{
		titleStyle.Render("Estimate"),
		row("Weight (kg)", weight),
		row("Factor used", d.Factor),
		row("Protein / day", d.ProteinDaily),
		row(d.MealsLabel, d.PerMeal),
		row("% calories from protein", d.Percent),
		row("MPS heuristic / meal", d.PerMealMPS+" (0.25 g/kg)"),
	}
	if out.Invalid {
		rows = append(rows, noteStyle.Render("Check weight, age, calories and meals."))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func row(label, value string) string {
	pad := labelWidth - lipgloss.Width(label)
	if pad < 1 {
		pad = 1
	}
	return labelStyle.Render(label) + strings.Repeat(" ", pad) + valueStyle.Render(value)
}

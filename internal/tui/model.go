// Package tui is an interactive terminal version of the calculator form. The
// result card is recomputed after every key press.
package tui

import (
	"math"
	"strings"

	"ProteinCalculator/internal/estimator"
	"ProteinCalculator/internal/render"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldKind int

const (
	kindNumber fieldKind = iota
	kindChoice
	kindToggle
	kindStepper
)

// field order on screen
const (
	fWeight = iota
	fUnit
	fAge
	fGender
	fActivity
	fGoal
	fCalories
	fMeals
	fUseCustom
	fCustomFactor
)

type field struct {
	label    string
	kind     fieldKind
	input    textinput.Model
	options  []string
	labels   []string
	selected int
	on       bool
	value    float64
}

// Model is the bubbletea model for the form.
type Model struct {
	fields   []field
	focus    int
	input    estimator.Input
	output   estimator.Output
	quitting bool
}

var (
	focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	blurStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// New builds the form pre-filled with initial.
func New(initial estimator.Input) Model {
	units := unitOptions()
	genders, genderLabels := genderOptions()
	activities, activityLabels := activityOptions()
	goals, goalLabels := goalOptions()

	m := Model{fields: []field{
		fWeight:       numberField("Weight", estimator.FormatNumber(initial.Weight)),
		fUnit:         choiceField("Unit", units, units, string(initial.Unit)),
		fAge:          numberField("Age", estimator.FormatNumber(initial.Age)),
		fGender:       choiceField("Gender", genders, genderLabels, string(initial.Gender)),
		fActivity:     choiceField("Activity", activities, activityLabels, string(initial.Activity)),
		fGoal:         choiceField("Goal", goals, goalLabels, string(initial.Goal)),
		fCalories:     numberField("Daily calories", estimator.FormatNumber(initial.Calories)),
		fMeals:        numberField("Meals per day", estimator.FormatNumber(initial.Meals)),
		fUseCustom:    {label: "Use custom factor", kind: kindToggle, on: initial.UseCustom},
		fCustomFactor: {label: "Custom factor (g/kg)", kind: kindStepper, value: initial.CustomFactor},
	}}
	m.fields[fWeight].input.Focus()
	m.recalc()
	return m
}

func numberField(label, value string) field {
	ti := textinput.New()
	ti.CharLimit = 8
	ti.Width = 10
	ti.Prompt = ""
	ti.SetValue(value)
	return field{label: label, kind: kindNumber, input: ti}
}

func choiceField(label string, options, labels []string, current string) field {
	return field{
		label:    label,
		kind:     kindChoice,
		options:  options,
		labels:   labels,
		selected: indexOf(options, current),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "enter":
		m.quitting = true
		return m, tea.Quit
	case "tab", "down":
		return m, m.moveFocus(1)
	case "shift+tab", "up":
		return m, m.moveFocus(-1)
	}

	var cmd tea.Cmd
	f := &m.fields[m.focus]
	switch f.kind {
	case kindNumber:
		f.input, cmd = f.input.Update(msg)
	default:
		cmd = m.handleControlKey(key.String())
	}
	m.recalc()
	return m, cmd
}

// handleControlKey deals with keys on non-text fields, where digits pick presets.
func (m *Model) handleControlKey(k string) tea.Cmd {
	f := &m.fields[m.focus]
	switch k {
	case "q":
		m.quitting = true
		return tea.Quit
	case "left", "h":
		m.step(f, -1)
	case "right", "l", " ":
		m.step(f, 1)
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			presets := estimator.Presets()
			if i := int(k[0] - '1'); i < len(presets) {
				m.applyPreset(presets[i].Key)
			}
		}
	}
	return nil
}

func (m *Model) step(f *field, dir int) {
	switch f.kind {
	case kindChoice:
		n := len(f.options)
		f.selected = ((f.selected+dir)%n + n) % n
	case kindToggle:
		f.on = !f.on
	case kindStepper:
		v := math.Round((f.value+float64(dir)*estimator.CustomFactorStep)*10) / 10
		f.value = math.Min(estimator.CustomFactorMax, math.Max(estimator.CustomFactorMin, v))
	}
}

func (m *Model) applyPreset(key string) {
	in, err := estimator.ApplyPreset(m.input, key)
	if err != nil {
		return
	}
	m.fields[fGoal].selected = indexOf(m.fields[fGoal].options, string(in.Goal))
	m.fields[fActivity].selected = indexOf(m.fields[fActivity].options, string(in.Activity))
	m.fields[fCustomFactor].value = in.CustomFactor
	m.fields[fUseCustom].on = in.UseCustom
}

func (m *Model) moveFocus(dir int) tea.Cmd {
	if m.fields[m.focus].kind == kindNumber {
		m.fields[m.focus].input.Blur()
	}
	n := len(m.fields)
	m.focus = ((m.focus+dir)%n + n) % n
	if m.fields[m.focus].kind == kindNumber {
		return m.fields[m.focus].input.Focus()
	}
	return nil
}

// recalc rebuilds the Input from the fields and re-estimates.
func (m *Model) recalc() {
	fs := m.fields
	m.input = estimator.Input{
		Weight:       estimator.ParseNumber(fs[fWeight].input.Value()),
		Unit:         estimator.Unit(fs[fUnit].options[fs[fUnit].selected]),
		Age:          estimator.ParseNumber(fs[fAge].input.Value()),
		Gender:       estimator.Gender(fs[fGender].options[fs[fGender].selected]),
		Activity:     estimator.Activity(fs[fActivity].options[fs[fActivity].selected]),
		Goal:         estimator.Goal(fs[fGoal].options[fs[fGoal].selected]),
		Calories:     estimator.ParseNumber(fs[fCalories].input.Value()),
		Meals:        estimator.ParseNumber(fs[fMeals].input.Value()),
		CustomFactor: fs[fCustomFactor].value,
		UseCustom:    fs[fUseCustom].on,
	}
	m.output = estimator.Estimate(m.input)
}

func (m Model) Input() estimator.Input   { return m.input }
func (m Model) Output() estimator.Output { return m.output }

// Summary is the copy line for the current state.
func (m Model) Summary() string {
	return estimator.Summary(m.input, m.output)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for i, f := range m.fields {
		style := blurStyle
		cursor := "  "
		if i == m.focus {
			style = focusStyle
			cursor = "> "
		}
		b.WriteString(cursor + style.Render(padRight(f.label, 22)) + " " + f.valueView() + "\n")
	}
	form := b.String()

	help := helpStyle.Render("tab/↑↓ move • ←/→ change • space toggle • 1-6 presets (on option fields) • enter quit")
	presets := make([]string, 0, len(estimator.Presets()))
	for i, p := range estimator.Presets() {
		presets = append(presets, string(rune('1'+i))+" "+p.Name)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", render.Card(m.input, m.output)),
		helpStyle.Render(strings.Join(presets, " • ")),
		help,
	)
}

func (f field) valueView() string {
	switch f.kind {
	case kindNumber:
		return f.input.View()
	case kindChoice:
		return "‹ " + f.labels[f.selected] + " ›"
	case kindToggle:
		if f.on {
			return "[x]"
		}
		return "[ ]"
	default:
		return "‹ " + estimator.FactorLabel(f.value) + " ›"
	}
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// Run shows the form and returns its final state.
func Run(initial estimator.Input) (Model, error) {
	final, err := tea.NewProgram(New(initial)).Run()
	if err != nil {
		return Model{}, err
	}
	return final.(Model), nil
}

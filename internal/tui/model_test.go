package tui

import (
	"testing"

	"ProteinCalculator/internal/estimator"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab       = tea.KeyMsg{Type: tea.KeyTab}
	right     = tea.KeyMsg{Type: tea.KeyRight}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

func TestNewUsesInitialInput(t *testing.T) {
	m := New(estimator.DefaultInput())
	assert.Equal(t, estimator.DefaultInput(), m.Input())
	assert.Equal(t, 56.0, m.Output().ProteinGrams)
	assert.Equal(t, "Protein recommendation: 56 g/day (18.7 g x 3), 9% of 2500 kcal/day", m.Summary())
}

func TestTypingWeightRecalculates(t *testing.T) {
	m := New(estimator.DefaultInput())
	m = press(t, m, backspace, backspace, runes("8"), runes("0"))

	assert.Equal(t, 80.0, m.Input().Weight)
	assert.Equal(t, 64.0, m.Output().ProteinGrams)
}

func TestCycleUnitAndGoal(t *testing.T) {
	m := New(estimator.DefaultInput())
	m = press(t, m, tab, right) // unit -> lb
	assert.Equal(t, estimator.UnitLb, m.Input().Unit)

	m = press(t, m, tab, tab, tab, tab, right) // goal -> hypertrophy
	assert.Equal(t, estimator.GoalHypertrophy, m.Input().Goal)
	assert.Equal(t, 1.6, m.Output().SelectedFactor)
}

func TestPresetKeyOnOptionField(t *testing.T) {
	m := New(estimator.DefaultInput())
	m = press(t, m, tab, runes("4")) // on the unit field; 4 = Strength / hypertrophy

	assert.True(t, m.Input().UseCustom)
	assert.Equal(t, 1.6, m.Input().CustomFactor)
	assert.Equal(t, estimator.GoalMaintenance, m.Input().Goal)
	assert.Equal(t, estimator.SourceCustom, m.Output().FactorSource)
	assert.Equal(t, 112.0, m.Output().ProteinGrams)
}

func TestDigitsOnNumberFieldAreText(t *testing.T) {
	m := New(estimator.DefaultInput())
	m = press(t, m, runes("4"))
	assert.Equal(t, 704.0, m.Input().Weight)
	assert.False(t, m.Input().UseCustom)
}

func TestStepperClampsToRange(t *testing.T) {
	in := estimator.DefaultInput()
	in.CustomFactor = 2.9
	in.UseCustom = true
	m := New(in)

	shiftTab := tea.KeyMsg{Type: tea.KeyShiftTab}
	m = press(t, m, shiftTab, right, right, right) // wraps to the custom factor field
	assert.Equal(t, estimator.CustomFactorMax, m.Input().CustomFactor)
}

func TestToggleCustom(t *testing.T) {
	m := New(estimator.DefaultInput())
	for i := 0; i < fUseCustom; i++ {
		m = press(t, m, tab)
	}
	m = press(t, m, runes(" "))
	assert.True(t, m.Input().UseCustom)
	assert.Equal(t, 1.0, m.Output().SelectedFactor)
}

func TestQuit(t *testing.T) {
	m := New(estimator.DefaultInput())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, next.View())
}

func TestView(t *testing.T) {
	view := New(estimator.DefaultInput()).View()
	assert.Contains(t, view, "Weight")
	assert.Contains(t, view, "Sedentary (little/no exercise)")
	assert.Contains(t, view, "56 g")
	assert.Contains(t, view, "RDA (adult)")
}

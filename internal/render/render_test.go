package render

import (
	"testing"

	"ProteinCalculator/internal/estimator"
	"ProteinCalculator/internal/reference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard(t *testing.T) {
	in := estimator.Input{Weight: 80, Unit: estimator.UnitKg, Age: 30, Calories: 2500, Meals: 3,
		CustomFactor: 1.6, UseCustom: true}
	card := Card(in, estimator.Estimate(in))

	assert.Contains(t, card, "Protein / day")
	assert.Contains(t, card, "128 g")
	assert.Contains(t, card, "42.7 g")
	assert.Contains(t, card, "20.5%")
	assert.Contains(t, card, "1.6 g/kg")
	assert.NotContains(t, card, "Check weight")
}

func TestCardPounds(t *testing.T) {
	in := estimator.DefaultInput()
	in.Weight = 150
	in.Unit = estimator.UnitLb
	assert.Contains(t, Card(in, estimator.Estimate(in)), "150 lb = 68.0 kg")
}

func TestCardInvalid(t *testing.T) {
	in := estimator.DefaultInput()
	in.Meals = 0
	card := Card(in, estimator.Estimate(in))
	assert.Contains(t, card, "—")
	assert.Contains(t, card, "Check weight")
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown(reference.MustLoad().Markdown(), "notty", 80)
	require.NoError(t, err)
	assert.Contains(t, out, "AMDR")
	assert.Contains(t, out, "References")
}

package estimator

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Output
	}{
		{
			name: "defaults",
			in:   DefaultInput(),
			want: Output{
				WeightKg:          70,
				SelectedFactor:    0.8,
				FactorSource:      SourceActivity,
				ProteinGrams:      56,
				ProteinKcal:       224,
				ProteinPercent:    9,
				PercentApplicable: true,
				PerMeal:           18.7,
				PerMealMPS:        17.5,
			},
		},
		{
			name: "custom factor 1.6 at 80 kg",
			in: Input{Weight: 80, Unit: UnitKg, Age: 30, Activity: ActivitySedentary, Goal: GoalWeightLoss,
				Calories: 2500, Meals: 3, CustomFactor: 1.6, UseCustom: true},
			want: Output{
				WeightKg:          80,
				SelectedFactor:    1.6,
				FactorSource:      SourceCustom,
				ProteinGrams:      128,
				ProteinKcal:       512,
				ProteinPercent:    20.5,
				PercentApplicable: true,
				PerMeal:           42.7,
				PerMealMPS:        20,
			},
		},
		{
			name: "no calories",
			in:   Input{Weight: 60, Unit: UnitKg, Age: 40, Activity: ActivityActive, Goal: GoalMaintenance, Meals: 4},
			want: Output{
				WeightKg:       60,
				SelectedFactor: 1.4,
				FactorSource:   SourceActivity,
				ProteinGrams:   84,
				ProteinKcal:    336,
				PerMeal:        21,
				PerMealMPS:     15,
			},
		},
		{
			name: "zero meals is invalid",
			in:   Input{Weight: 50, Unit: UnitKg, Age: 25, Activity: ActivitySedentary, Goal: GoalOlderAdult, Calories: 2000},
			want: Output{
				WeightKg:          50,
				SelectedFactor:    1.2,
				FactorSource:      SourceGoal,
				ProteinGrams:      60,
				ProteinKcal:       240,
				ProteinPercent:    12,
				PercentApplicable: true,
				PerMeal:           60,
				PerMealMPS:        12.5,
				Invalid:           true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Estimate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPoundsConvertToKilograms(t *testing.T) {
	for _, w := range []float64{0, 1, 99.5, 150, 220.46, 1000} {
		in := DefaultInput()
		in.Weight = w
		in.Unit = UnitLb
		out := Estimate(in)
		assert.InDelta(t, w*0.45359237, out.WeightKg, 1e-6, "weight %v lb", w)
	}

	out := Estimate(Input{Weight: 150, Unit: UnitLb, Age: 30, Goal: GoalHypertrophy, Calories: 2200, Meals: 4})
	assert.Equal(t, 108.9, out.ProteinGrams)
}

func TestBadWeightTreatedAsZero(t *testing.T) {
	for _, w := range []float64{-10, math.NaN(), math.Inf(1), math.Inf(-1)} {
		in := DefaultInput()
		in.Weight = w
		out := Estimate(in)
		assert.Zero(t, out.WeightKg)
		assert.Zero(t, out.ProteinGrams)
		assert.True(t, out.Invalid)
	}
}

func TestProteinGramsMatchesFactor(t *testing.T) {
	for _, unit := range Units {
		for _, goal := range Goals {
			for _, act := range append(Activities, Activity("unknown")) {
				for _, custom := range []bool{false, true} {
					in := Input{Weight: 73.3, Unit: unit, Age: 35, Activity: act, Goal: goal,
						Calories: 2100, Meals: 5, CustomFactor: 2.2, UseCustom: custom}
					out := Estimate(in)
					assert.Equal(t, round1(out.WeightKg*out.SelectedFactor), out.ProteinGrams)
					assert.InDelta(t, out.ProteinGrams, out.PerMeal*in.Meals, 0.05*in.Meals)
				}
			}
		}
	}
}

func TestSelectFactor(t *testing.T) {
	for _, act := range Activities {
		f, src := SelectFactor(Input{Goal: GoalHypertrophy, Activity: act})
		assert.Equal(t, 1.6, f)
		assert.Equal(t, SourceGoal, src)
	}

	f, src := SelectFactor(Input{Goal: GoalMaintenance, Activity: ActivityAthlete})
	assert.Equal(t, 1.6, f)
	assert.Equal(t, SourceActivity, src)

	f, _ = SelectFactor(Input{Goal: GoalMaintenance, Activity: "couch"})
	assert.Equal(t, DefaultFactor, f)

	// a custom factor of zero falls through to the tables
	f, src = SelectFactor(Input{Goal: GoalPregnancy, UseCustom: true})
	assert.Equal(t, 1.1, f)
	assert.Equal(t, SourceGoal, src)

	f, src = SelectFactor(Input{Goal: GoalPregnancy, CustomFactor: 2.5})
	assert.Equal(t, 1.1, f, "custom factor is ignored unless enabled")
	assert.Equal(t, SourceGoal, src)
}

func TestZeroCaloriesNeverDivides(t *testing.T) {
	in := DefaultInput()
	in.Calories = 0
	out := Estimate(in)
	require.False(t, out.PercentApplicable)
	assert.Zero(t, out.ProteinPercent)
	assert.False(t, out.Invalid)
	assert.False(t, math.IsNaN(out.ProteinPercent))
}

func TestIsInvalid(t *testing.T) {
	base := DefaultInput()
	require.False(t, IsInvalid(base))

	cases := map[string]func(*Input){
		"zero weight":       func(in *Input) { in.Weight = 0 },
		"zero age":          func(in *Input) { in.Age = 0 },
		"negative calories": func(in *Input) { in.Calories = -1 },
		"zero meals":        func(in *Input) { in.Meals = 0 },
		"negative meals":    func(in *Input) { in.Meals = -2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := base
			mutate(&in)
			out := Estimate(in)
			assert.True(t, out.Invalid)
			for _, v := range []float64{out.ProteinGrams, out.PerMeal, out.ProteinPercent, out.PerMealMPS} {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
			}
		})
	}
}

func TestEstimateIsDeterministic(t *testing.T) {
	in := Input{Weight: 181, Unit: UnitLb, Age: 52, Activity: ActivityModeratelyActive,
		Goal: GoalMaintenance, Calories: 1900, Meals: 3}
	first := Estimate(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Estimate(in))
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.25, 0.3},
		{1.45000001, 1.5},
		{1.96, 2.0},
		{12.04, 12.0},
		{0.15, 0.1},
		{1.05, 1.1},
		{-0.25, -0.3},
		{128, 128},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round1(tt.in), "round1(%v)", tt.in)
	}
}

func TestProteinGramsRoundStoredValue(t *testing.T) {
	tests := []struct {
		weight, factor, want float64
	}{
		{30.7, 0.5, 15.3},
		{30.5, 1.9, 57.9},
		{70, 0.25, 17.5},
	}
	for _, tt := range tests {
		in := Input{Weight: tt.weight, Unit: UnitKg, Age: 30, Calories: 2000, Meals: 3,
			CustomFactor: tt.factor, UseCustom: true}
		assert.Equal(t, tt.want, Estimate(in).ProteinGrams, "%v kg x %v", tt.weight, tt.factor)
	}
}

func TestFractionalMeals(t *testing.T) {
	in := Input{Weight: 80, Unit: UnitKg, Age: 30, Calories: 2500, Meals: 2.5,
		CustomFactor: 1.6, UseCustom: true}
	out := Estimate(in)
	assert.Equal(t, 51.2, out.PerMeal)
	assert.False(t, out.Invalid)
	assert.Equal(t, "Protein recommendation: 128 g/day (51.2 g x 2.5), 20.5% of 2500 kcal/day", Summary(in, out))

	in.Meals = 0.5
	out = Estimate(in)
	assert.Equal(t, 256.0, out.PerMeal)
	assert.False(t, out.Invalid)
}

func TestFactorLabel(t *testing.T) {
	assert.Equal(t, "1.6 g/kg", FactorLabel(1.6))
	assert.Equal(t, "1 g/kg", FactorLabel(1.0))
}

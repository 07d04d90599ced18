package estimator

import (
	"math"
	"math/big"
	"strconv"
)

const (
	// KgPerLb is the exact international avoirdupois pound.
	KgPerLb = 0.45359237

	// KcalPerGram is the Atwater factor for protein.
	KcalPerGram = 4.0

	// MPSFactor is the per-meal muscle protein synthesis heuristic in g/kg.
	MPSFactor = 0.25

	// DefaultFactor applies when the activity is not recognised.
	DefaultFactor = 0.8

	CustomFactorMin  = 0.5
	CustomFactorMax  = 3.0
	CustomFactorStep = 0.1
)

// Goals missing here (maintenance) defer to the activity table.
var goalFactors = map[Goal]float64{
	GoalHypertrophy: 1.6,
	GoalWeightLoss:  1.8,
	GoalOlderAdult:  1.2,
	GoalPregnancy:   1.1,
}

var activityFactors = map[Activity]float64{
	ActivitySedentary:        0.8,
	ActivityModeratelyActive: 1.0,
	ActivityActive:           1.4,
	ActivityAthlete:          1.6,
}

// GoalFactor returns the fixed factor for a goal, if it has one.
func GoalFactor(g Goal) (float64, bool) {
	f, ok := goalFactors[g]
	return f, ok
}

// ActivityFactor returns the factor for an activity level, falling back to
// DefaultFactor for anything unrecognised.
func ActivityFactor(a Activity) float64 {
	if f, ok := activityFactors[a]; ok {
		return f
	}
	return DefaultFactor
}

// SelectFactor resolves the effective g/kg factor: custom, then goal, then activity.
func SelectFactor(in Input) (float64, FactorSource) {
	if in.UseCustom && in.CustomFactor > 0 {
		return in.CustomFactor, SourceCustom
	}
	if f, ok := GoalFactor(in.Goal); ok {
		return f, SourceGoal
	}
	return ActivityFactor(in.Activity), SourceActivity
}

// ToKg normalises a weight to kilograms. Negative and non-finite weights become 0.
func ToKg(weight float64, unit Unit) float64 {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return 0
	}
	if unit == UnitLb {
		return weight * KgPerLb
	}
	return weight
}

// FactorLabel formats a factor the way the result card shows it.
func FactorLabel(factor float64) string {
	return FormatNumber(factor) + " g/kg"
}

// round1 rounds to one decimal place from the exact stored value of x, ties
// away from zero. 15.35 is stored as 15.3499... and therefore becomes 15.3.
func round1(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := new(big.Rat).SetFloat64(x)
	neg := r.Sign() < 0
	r.Abs(r)
	r.Mul(r, big.NewRat(10, 1))
	r.Add(r, big.NewRat(1, 2))
	tenths := new(big.Int).Quo(r.Num(), r.Denom())

	v, err := strconv.ParseFloat(tenths.String()+"e-1", 64)
	if err != nil {
		return x
	}
	if neg {
		return -v
	}
	return v
}

// FormatNumber prints a number in its shortest form: 128, 42.7, 0.
func FormatNumber(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

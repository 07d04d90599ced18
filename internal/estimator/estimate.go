/**
* Name:        estimate.go
* Description: daily protein estimate from body weight and goals
* Workflow:    kg conversion -> factor -> grams -> kcal / percent / per meal
 */
package estimator

// Estimate derives every output value from in. It has no side effects and never
// fails; inputs that cannot produce a meaningful result set Invalid instead.
func Estimate(in Input) Output {
	weightKg := ToKg(in.Weight, in.Unit)
	factor, source := SelectFactor(in)

	out := Output{
		WeightKg:       weightKg,
		SelectedFactor: factor,
		FactorSource:   source,
	}

	out.ProteinGrams = round1(weightKg * factor)
	out.ProteinKcal = out.ProteinGrams * KcalPerGram

	if in.Calories > 0 {
		out.ProteinPercent = round1(out.ProteinKcal / in.Calories * 100)
		out.PercentApplicable = true
	}

	if in.Meals > 0 {
		out.PerMeal = round1(out.ProteinGrams / in.Meals)
	} else {
		out.PerMeal = out.ProteinGrams
	}

	out.PerMealMPS = round1(weightKg * MPSFactor)
	out.Invalid = IsInvalid(in)
	return out
}

// IsInvalid reports whether the form should show placeholders instead of numbers.
func IsInvalid(in Input) bool {
	return ToKg(in.Weight, in.Unit) <= 0 || in.Age <= 0 || in.Calories < 0 || in.Meals <= 0
}

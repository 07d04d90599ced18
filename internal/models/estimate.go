package models

import (
	"fmt"

	"ProteinCalculator/internal/estimator"
)

// /api/estimate request body. Omitted fields fall back to the form defaults.
type EstimateRequest struct {
	Weight       *FlexNumber `json:"weight" swaggertype:"number" example:"70"`
	Unit         *string     `json:"unit" example:"kg"`
	Age          *FlexNumber `json:"age" swaggertype:"number" example:"28"`
	Gender       *string     `json:"gender" example:"male"`
	Activity     *string     `json:"activity" example:"sedentary"`
	Goal         *string     `json:"goal" example:"maintenance"`
	Calories     *FlexNumber `json:"calories" swaggertype:"number" example:"2500"`
	Meals        *FlexNumber `json:"meals" swaggertype:"number" example:"3"`
	CustomFactor *FlexNumber `json:"custom_factor" swaggertype:"number" example:"1.0"`
	UseCustom    *FlexBool   `json:"use_custom" swaggertype:"boolean" example:"false"`
}

// ToInput overlays the request onto base.
func (r EstimateRequest) ToInput(base estimator.Input) estimator.Input {
	in := base
	if r.Weight != nil {
		in.Weight = r.Weight.Float()
	}
	if r.Unit != nil {
		in.Unit = estimator.ParseUnit(*r.Unit)
	}
	if r.Age != nil {
		in.Age = r.Age.Float()
	}
	if r.Gender != nil {
		in.Gender = estimator.ParseGender(*r.Gender)
	}
	if r.Activity != nil {
		in.Activity = estimator.ParseActivity(*r.Activity)
	}
	if r.Goal != nil {
		in.Goal = estimator.ParseGoal(*r.Goal)
	}
	if r.Calories != nil {
		in.Calories = r.Calories.Float()
	}
	if r.Meals != nil {
		in.Meals = r.Meals.Float()
	}
	if r.CustomFactor != nil {
		in.CustomFactor = r.CustomFactor.Float()
	}
	if r.UseCustom != nil {
		in.UseCustom = bool(*r.UseCustom)
	}
	return in
}

// Display holds the strings the result card shows, with placeholders for
// values that cannot be computed.
type Display struct {
	WeightKg     string `json:"weight_kg" example:"70.0 kg"`
	PoundsHint   string `json:"pounds_hint,omitempty" example:"68.0 kg"`
	Factor       string `json:"factor" example:"0.8 g/kg"`
	ProteinDaily string `json:"protein_daily" example:"56 g"`
	PerMeal      string `json:"per_meal" example:"18.7 g"`
	MealsLabel   string `json:"meals_label" example:"Protein / meal (3x)"`
	Percent      string `json:"percent" example:"9%"`
	PerMealMPS   string `json:"per_meal_mps" example:"17.5 g"`
}

const (
	Placeholder        = "—"
	CaloriesMissingMsg = "enter calories"
)

func NewDisplay(in estimator.Input, out estimator.Output) Display {
	d := Display{
		WeightKg:     fmt.Sprintf("%.1f kg", out.WeightKg),
		Factor:       estimator.FactorLabel(out.SelectedFactor),
		ProteinDaily: Placeholder,
		PerMeal:      Placeholder,
		MealsLabel:   fmt.Sprintf("Protein / meal (%sx)", estimator.FormatNumber(in.Meals)),
		Percent:      CaloriesMissingMsg,
		PerMealMPS:   estimator.FormatNumber(out.PerMealMPS) + " g",
	}
	if in.Unit == estimator.UnitLb {
		d.PoundsHint = fmt.Sprintf("%.1f kg", out.WeightKg)
	}
	if !out.Invalid {
		d.ProteinDaily = estimator.FormatNumber(out.ProteinGrams) + " g"
		d.PerMeal = estimator.FormatNumber(out.PerMeal) + " g"
	}
	if out.PercentApplicable {
		d.Percent = estimator.FormatNumber(out.ProteinPercent) + "%"
	}
	return d
}

type EstimateResponse struct {
	Input   estimator.Input  `json:"input"`
	Result  estimator.Output `json:"result"`
	Display Display          `json:"display"`
	Summary string           `json:"summary" example:"Protein recommendation: 56 g/day (18.7 g x 3), 9% of 2500 kcal/day"`
}

func NewEstimateResponse(in estimator.Input) EstimateResponse {
	out := estimator.Estimate(in)
	return EstimateResponse{
		Input:   in,
		Result:  out,
		Display: NewDisplay(in, out),
		Summary: estimator.Summary(in, out),
	}
}

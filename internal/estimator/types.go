package estimator

// Unit is the unit a body weight was entered in.
type Unit string

const (
	UnitKg Unit = "kg"
	UnitLb Unit = "lb"
)

// Gender is accepted for display only and never changes the result.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Activity string

const (
	ActivitySedentary        Activity = "sedentary"
	ActivityModeratelyActive Activity = "moderately_active"
	ActivityActive           Activity = "active"
	ActivityAthlete          Activity = "athlete"
)

type Goal string

const (
	GoalMaintenance Goal = "maintenance"
	GoalHypertrophy Goal = "hypertrophy"
	GoalWeightLoss  Goal = "weight_loss"
	GoalOlderAdult  Goal = "older_adult"
	GoalPregnancy   Goal = "pregnancy"
)

// FactorSource records which rule picked the g/kg factor.
type FactorSource string

const (
	SourceCustom   FactorSource = "custom"
	SourceGoal     FactorSource = "goal"
	SourceActivity FactorSource = "activity"
)

// Input is one snapshot of the form. Age and Gender only take part in the
// validity check and display.
type Input struct {
	Weight       float64  `json:"weight" yaml:"weight"`
	Unit         Unit     `json:"unit" yaml:"unit"`
	Age          float64  `json:"age" yaml:"age"`
	Gender       Gender   `json:"gender" yaml:"gender"`
	Activity     Activity `json:"activity" yaml:"activity"`
	Goal         Goal     `json:"goal" yaml:"goal"`
	Calories     float64  `json:"calories" yaml:"calories"`
	Meals        float64  `json:"meals" yaml:"meals"`
	CustomFactor float64  `json:"custom_factor" yaml:"custom_factor"`
	UseCustom    bool     `json:"use_custom" yaml:"use_custom"`
}

// Output holds every value derived from an Input.
type Output struct {
	WeightKg          float64      `json:"weight_kg"`
	SelectedFactor    float64      `json:"selected_factor"`
	FactorSource      FactorSource `json:"factor_source"`
	ProteinGrams      float64      `json:"protein_grams"`
	ProteinKcal       float64      `json:"protein_kcal"`
	ProteinPercent    float64      `json:"protein_percent"`
	PercentApplicable bool         `json:"percent_applicable"`
	PerMeal           float64      `json:"per_meal"`
	PerMealMPS        float64      `json:"per_meal_mps"`
	Invalid           bool         `json:"invalid"`
}

// DefaultInput is the state a fresh form starts from.
func DefaultInput() Input {
	return Input{
		Weight:       70,
		Unit:         UnitKg,
		Age:          28,
		Gender:       GenderMale,
		Activity:     ActivitySedentary,
		Goal:         GoalMaintenance,
		Calories:     2500,
		Meals:        3,
		CustomFactor: 1.0,
		UseCustom:    false,
	}
}

// Units, Genders, Activities and Goals list the selectable values in form order.
var (
	Units      = []Unit{UnitKg, UnitLb}
	Genders    = []Gender{GenderMale, GenderFemale, GenderOther}
	Activities = []Activity{ActivitySedentary, ActivityModeratelyActive, ActivityActive, ActivityAthlete}
	Goals      = []Goal{GoalMaintenance, GoalHypertrophy, GoalWeightLoss, GoalOlderAdult, GoalPregnancy}
)

package estimator

var activityLabels = map[Activity]string{
	ActivitySedentary:        "Sedentary (little/no exercise)",
	ActivityModeratelyActive: "Moderately active (1-3x/wk)",
	ActivityActive:           "Active (3-5x/wk)",
	ActivityAthlete:          "Athlete (daily / high intensity)",
}

var goalLabels = map[Goal]string{
	GoalMaintenance: "Maintenance",
	GoalHypertrophy: "Hypertrophy / Build muscle",
	GoalWeightLoss:  "Weight loss (retain LBM)",
	GoalOlderAdult:  "Older adult / sarcopenia prevention",
	GoalPregnancy:   "Pregnancy / Lactation",
}

var genderLabels = map[Gender]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
	GenderOther:  "Other",
}

// Label returns the human-readable option text, or the raw value if unknown.
func (a Activity) Label() string {
	if l, ok := activityLabels[a]; ok {
		return l
	}
	return string(a)
}

func (g Goal) Label() string {
	if l, ok := goalLabels[g]; ok {
		return l
	}
	return string(g)
}

func (g Gender) Label() string {
	if l, ok := genderLabels[g]; ok {
		return l
	}
	return string(g)
}

package estimator

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber coerces user text to a number. Anything that is not a finite
// number becomes 0 rather than an error.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func ParseUnit(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lb", "lbs", "pound", "pounds":
		return UnitLb
	}
	return UnitKg
}

// ParseGender keeps unknown values; gender never affects the estimate.
func ParseGender(s string) Gender {
	s = normalize(s)
	if s == "" {
		return GenderMale
	}
	return Gender(s)
}

// ParseActivity keeps unknown values so the estimator applies its fallback factor.
func ParseActivity(s string) Activity {
	s = normalize(s)
	if s == "" {
		return ActivitySedentary
	}
	return Activity(s)
}

func ParseGoal(s string) Goal {
	s = normalize(s)
	if s == "" {
		return GoalMaintenance
	}
	return Goal(s)
}

// normalize lowercases and turns "Moderately Active" or "weight-loss" into
// the snake_case keys used by the factor tables.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

package tui

import "ProteinCalculator/internal/estimator"

func unitOptions() []string {
	out := make([]string, len(estimator.Units))
	for i, u := range estimator.Units {
		out[i] = string(u)
	}
	return out
}

func genderOptions() ([]string, []string) {
	opts := make([]string, len(estimator.Genders))
	labels := make([]string, len(estimator.Genders))
	for i, g := range estimator.Genders {
		opts[i], labels[i] = string(g), g.Label()
	}
	return opts, labels
}

func activityOptions() ([]string, []string) {
	opts := make([]string, len(estimator.Activities))
	labels := make([]string, len(estimator.Activities))
	for i, a := range estimator.Activities {
		opts[i], labels[i] = string(a), a.Label()
	}
	return opts, labels
}

func goalOptions() ([]string, []string) {
	opts := make([]string, len(estimator.Goals))
	labels := make([]string, len(estimator.Goals))
	for i, g := range estimator.Goals {
		opts[i], labels[i] = string(g), g.Label()
	}
	return opts, labels
}

// indexOf returns the position of v in opts, or 0 when absent.
func indexOf(opts []string, v string) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return 0
}

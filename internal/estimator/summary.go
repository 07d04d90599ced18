package estimator

import "fmt"

// Summary renders the one-line text offered by the "copy result" action.
func Summary(in Input, out Output) string {
	return fmt.Sprintf("Protein recommendation: %s g/day (%s g x %s), %s%% of %s kcal/day",
		FormatNumber(out.ProteinGrams),
		FormatNumber(out.PerMeal),
		FormatNumber(in.Meals),
		FormatNumber(out.ProteinPercent),
		FormatNumber(in.Calories),
	)
}

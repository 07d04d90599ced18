package main

import (
	"encoding/json"
	"fmt"

	"ProteinCalculator/internal/estimator"
	"ProteinCalculator/internal/models"
	"ProteinCalculator/internal/render"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// inputFlags are strings so that bad numbers are coerced, not rejected.
type inputFlags struct {
	weight, unit, age, gender, activity, goal string
	calories, meals, customFactor             string
	useCustom                                 bool
	preset                                    string
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.weight, "weight", "w", "", "body weight")
	fs.StringVarP(&f.unit, "unit", "u", "", "weight unit: kg or lb")
	fs.StringVar(&f.age, "age", "", "age in years")
	fs.StringVar(&f.gender, "gender", "", "male, female or other (informational)")
	fs.StringVarP(&f.activity, "activity", "a", "", "sedentary, moderately_active, active or athlete")
	fs.StringVarP(&f.goal, "goal", "g", "", "maintenance, hypertrophy, weight_loss, older_adult or pregnancy")
	fs.StringVarP(&f.calories, "calories", "c", "", "daily calorie budget (optional)")
	fs.StringVarP(&f.meals, "meals", "m", "", "meals per day")
	fs.StringVar(&f.customFactor, "custom-factor", "", "custom g/kg factor (0.5-3.0)")
	fs.BoolVar(&f.useCustom, "use-custom", false, "use the custom factor")
	fs.StringVarP(&f.preset, "preset", "p", "", "apply a preset before the other flags (see 'protein presets')")
}

// apply overlays changed flags onto base. A preset goes first so that
// explicit flags win over it.
func (f *inputFlags) apply(fs *pflag.FlagSet, base estimator.Input) (estimator.Input, error) {
	in := base
	if f.preset != "" {
		var err error
		if in, err = estimator.ApplyPreset(in, f.preset); err != nil {
			return in, fmt.Errorf("%w %q", err, f.preset)
		}
	}

	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}
	set("weight", func() { in.Weight = estimator.ParseNumber(f.weight) })
	set("unit", func() { in.Unit = estimator.ParseUnit(f.unit) })
	set("age", func() { in.Age = estimator.ParseNumber(f.age) })
	set("gender", func() { in.Gender = estimator.ParseGender(f.gender) })
	set("activity", func() { in.Activity = estimator.ParseActivity(f.activity) })
	set("goal", func() { in.Goal = estimator.ParseGoal(f.goal) })
	set("calories", func() { in.Calories = estimator.ParseNumber(f.calories) })
	set("meals", func() { in.Meals = estimator.ParseNumber(f.meals) })
	set("custom-factor", func() { in.CustomFactor = estimator.ParseNumber(f.customFactor) })
	set("use-custom", func() { in.UseCustom = f.useCustom })
	return in, nil
}

func newEstimateCmd() *cobra.Command {
	var (
		flags  inputFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate daily protein needs",
		Example: `  protein estimate --weight 80 --goal hypertrophy
  protein estimate -w 176 -u lb --preset cut --format summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := baseInput()
			if err != nil {
				return err
			}
			in, err := flags.apply(cmd.Flags(), base)
			if err != nil {
				return err
			}
			out := estimator.Estimate(in)
			appLog.Debug("estimate",
				zap.Float64("weight_kg", out.WeightKg),
				zap.Float64("factor", out.SelectedFactor),
				zap.String("factor_source", string(out.FactorSource)))

			w := cmd.OutOrStdout()
			switch format {
			case "card":
				fmt.Fprintln(w, render.Card(in, out))
			case "summary":
				fmt.Fprintln(w, estimator.Summary(in, out))
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(models.NewEstimateResponse(in))
			default:
				return fmt.Errorf("unknown format %q (want card, summary or json)", format)
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "card", "output format: card, summary or json")
	return cmd
}

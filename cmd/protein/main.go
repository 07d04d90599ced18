// Command protein estimates daily protein needs from the terminal.
package main

import (
	"fmt"
	"os"

	"ProteinCalculator/internal/config"
	"ProteinCalculator/internal/estimator"
	"ProteinCalculator/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	appLog     = zap.NewNop()
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "protein",
	Short: "Daily protein needs calculator",
	Long: `protein estimates daily protein intake from body weight, activity and goal.

It uses simple published g/kg heuristics and is not a substitute for medical advice.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		l, err := logger.New("debug")
		if err != nil {
			return err
		}
		appLog = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = appLog.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config whose defaults seed the inputs")

	rootCmd.AddCommand(newEstimateCmd(), presetsCmd, referencesCmd, newFormCmd())
}

// baseInput is the starting point flags are applied to.
func baseInput() (estimator.Input, error) {
	if configPath == "" {
		return estimator.DefaultInput(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return estimator.Input{}, err
	}
	appLog.Debug("loaded config defaults", zap.String("path", configPath))
	return cfg.Defaults, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

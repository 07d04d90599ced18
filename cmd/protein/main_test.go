package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ProteinCalculator/internal/estimator"
	"ProteinCalculator/internal/models"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimateSummary(t *testing.T) {
	out, err := execute(t, newEstimateCmd(),
		"--weight", "80", "--custom-factor", "1.6", "--use-custom", "--age", "30", "--format", "summary")
	require.NoError(t, err)
	assert.Equal(t, "Protein recommendation: 128 g/day (42.7 g x 3), 20.5% of 2500 kcal/day\n", out)
}

func TestEstimateCard(t *testing.T) {
	out, err := execute(t, newEstimateCmd(), "-w", "150", "-u", "lb", "-g", "hypertrophy")
	require.NoError(t, err)
	assert.Contains(t, out, "108.9 g")
	assert.Contains(t, out, "150 lb = 68.0 kg")
}

func TestEstimateJSON(t *testing.T) {
	out, err := execute(t, newEstimateCmd(), "--meals", "0", "--calories", "abc", "--format", "json")
	require.NoError(t, err)

	var resp models.EstimateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Result.Invalid)
	assert.Zero(t, resp.Input.Calories)
	assert.Equal(t, models.Placeholder, resp.Display.ProteinDaily)
}

func TestEstimatePresetThenOverride(t *testing.T) {
	out, err := execute(t, newEstimateCmd(), "--preset", "rda", "--custom-factor", "1.2", "--format", "json")
	require.NoError(t, err)

	var resp models.EstimateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Input.UseCustom)
	assert.Equal(t, 1.2, resp.Result.SelectedFactor)
	assert.Equal(t, estimator.SourceCustom, resp.Result.FactorSource)
}

func TestEstimateErrors(t *testing.T) {
	_, err := execute(t, newEstimateCmd(), "--preset", "keto")
	require.Error(t, err)
	assert.ErrorIs(t, err, estimator.ErrUnknownPreset)

	_, err = execute(t, newEstimateCmd(), "--format", "xml")
	assert.Error(t, err)
}

func TestEstimateConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  weight: 90\n  meals: 5\n"), 0o644))

	configPath = path
	t.Cleanup(func() { configPath = "" })

	out, err := execute(t, newEstimateCmd(), "--format", "summary")
	require.NoError(t, err)
	assert.Equal(t, "Protein recommendation: 72 g/day (14.4 g x 5), 11.5% of 2500 kcal/day\n", out)
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, rootCmd, "presets")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "KEY")
	assert.Contains(t, lines[6], "bodybuilder")
	assert.Contains(t, lines[6], "2.2 g/kg")
}

func TestReferencesRaw(t *testing.T) {
	out, err := execute(t, rootCmd, "references", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "# Protein Needs Calculator")
	assert.Contains(t, out, "AMDR for protein")
}

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peasim/brokerage-simulator/internal/calculation"
)

// execute runs the CLI with args, resetting every flag to its default first.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "peasim version "+version)
}

func TestProviders(t *testing.T) {
	out, _, err := execute(t, "providers")
	require.NoError(t, err)
	for _, want := range []string{"Bourse Direct", "Boursorama", "Saxo", "0.38%", "bourse-direct (6 tiers)", "saxo (5 tiers)"} {
		assert.Contains(t, out, want)
	}
}

func TestFeesCSV(t *testing.T) {
	out, _, err := execute(t, "fees", "--max", "1000", "--step", "500", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Amount,Bourse Direct,Boursorama,Saxo\n"+
		"0,0.00,0.00,0.00\n"+
		"500,0.99,1.99,2.50\n"+
		"1000,1.90,5.00,2.50\n", out)
}

func TestFeesFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	_, _, err := execute(t, "config", "init", "-o", path)
	require.NoError(t, err)

	out, _, err := execute(t, "fees", "-c", path, "--max", "1000", "--step", "500", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Amount,Bourse Direct,Boursorama,Saxo,Bourse Direct (World + Emerging)\n"+
		"0,0.00,0.00,0.00,0.00\n"+
		"500,0.99,1.99,2.50,1.49\n"+
		"1000,1.90,5.00,2.50,2.89\n", out)
}

func TestFeesRejectsBadStep(t *testing.T) {
	_, _, err := execute(t, "fees", "--step", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, calculation.ErrInvalidParameter))

	_, _, err = execute(t, "fees", "--max", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max")
}

func TestSimulateDefaultPlanCSV(t *testing.T) {
	out, _, err := execute(t, "simulate", "-f", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Bourse Direct,0.38,149940.00,255799.26,852.66,850.76,850.76,790.21", lines[1])
	assert.Equal(t, "Boursorama,0.38,149940.00,255102.10,850.34,846.09,846.09,786.10", lines[2])
	assert.Equal(t, "Saxo,0.38,149940.00,255614.58,852.05,849.55,849.55,789.14", lines[3])
}

func TestSimulateOverrides(t *testing.T) {
	out, _, err := execute(t, "simulate", "--years", "3", "--limit", "15000", "-f", "accumulation", "--parallel")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[2], "1,9996.00,10320.19,"), lines[2])
	assert.True(t, strings.HasPrefix(lines[4], "3,14994.00,17384.47,"), lines[4])

	out, _, err = execute(t, "simulate", "--years", "1", "--limit", "none", "--expense-ratio", "0", "--growth", "0", "-f", "accumulation")
	require.NoError(t, err)
	assert.Contains(t, out, "1,9996.00,9973.20,")
}

func TestSimulateBadOverride(t *testing.T) {
	_, _, err := execute(t, "simulate", "--monthly", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--monthly")

	_, _, err = execute(t, "simulate", "--years", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, calculation.ErrInvalidParameter))
}

func TestSimulateWritesReport(t *testing.T) {
	dir := t.TempDir()
	out, _, err := execute(t, "simulate", "-f", "json", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Wrote "+dir)

	matches, err := filepath.Glob(filepath.Join(dir, "peasim_json_*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestSimulatePrettyMarkdown(t *testing.T) {
	out, _, err := execute(t, "simulate", "-f", "md", "--pretty", "--style", "notty", "--years", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Accumulation")
	assert.NotContains(t, out, "| --- |")
}

func TestSimulateVerboseLogging(t *testing.T) {
	_, stderr, err := execute(t, "simulate", "--years", "2", "-v", "--log-level", "debug", "-f", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, stderr, "INFO run ")
	assert.Contains(t, stderr, "DEBUG year 1: 12 contributing months")

	_, stderr, err = execute(t, "simulate", "--years", "2", "-f", "console-lite")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")

	out, _, err := execute(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Created example configuration: "+path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	out, _, err = execute(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Configuration valid")
	assert.Contains(t, out, "Providers: 4")

	out, _, err = execute(t, "simulate", "-c", path, "-f", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Bourse Direct (World + Emerging),0.344,149940.00,256395.10")
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  monthly_contribution: 0\n  number_of_years: 5\n"), 0o644))

	_, _, err := execute(t, "config", "validate", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

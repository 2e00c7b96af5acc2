package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linfit/regression"
	"github.com/arloliu/linfit/snapshot"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestFit(t *testing.T) {
	out, _, err := execute(t, "fit", "--x", "1 2 x 3", "--y", "2 4 6")
	require.NoError(t, err)
	require.Contains(t, out, "Points: 3 (1 tokens ignored)")
	require.Contains(t, out, "Line: y = 2.0000x + 0.0000")
	require.Contains(t, out, "Curve: 21 points from x=1.0000 to x=3.0000")
}

func TestFit_Errors(t *testing.T) {
	_, _, err := execute(t, "fit", "--x", "1 2 3", "--y", "1 2")
	require.ErrorIs(t, err, regression.ErrMismatchedLengths)
	require.True(t, isInputError(err))

	_, _, err = execute(t, "fit", "--x", "4 4", "--y", "1 2")
	require.ErrorIs(t, err, regression.ErrDegenerateInput)

	_, _, err = execute(t, "fit", "--x", "1", "--y", "1")
	require.ErrorIs(t, err, regression.ErrInsufficientPoints)

	_, _, err = execute(t, "fit", "--x", "1 2", "--y", "1 2", "--step", "0")
	require.ErrorContains(t, err, "Config.Curve.Step failed 'gt'")
	require.False(t, isInputError(err))
}

func TestFit_NoClampAndStep(t *testing.T) {
	out, _, err := execute(t, "fit", "--x", "0 2", "--y", "-1 -3", "--step", "1", "--no-clamp", "--curve")
	require.NoError(t, err)
	require.Contains(t, out, "Curve: 3 points from x=0.0000 to x=2.0000")
	require.Contains(t, out, "  2.0000\t-3.0000\n")
}

func TestFitSnapshotInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fit.lfit")

	_, logs, err := execute(t, "--log-level", "info", "fit", "--x", "1 2 3", "--y", "1 3 2",
		"--out", path, "--compression", "zstd", "--big-endian")
	require.NoError(t, err)
	require.Contains(t, logs, "snapshot written")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	snap, err := snapshot.Decode(data)
	require.NoError(t, err)
	require.Len(t, snap.Points, 3)
	require.NotNil(t, snap.Line)

	out, _, err := execute(t, "inspect", path)
	require.NoError(t, err)
	require.Contains(t, out, "Snapshot v1, big-endian, Zstd")
	require.Contains(t, out, "Points: 3")
	require.Contains(t, out, "Line: y = 0.5000x + 1.0000")

	_, _, err = execute(t, "inspect", filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, "failed to read snapshot")
}

func TestAnalyze(t *testing.T) {
	out, _, err := execute(t, "analyze", "--x", "1 2 3 4", "--y", "3 5 7 9")
	require.NoError(t, err)
	require.Contains(t, out, "Best fit: linear (R² 1.0000)")
	require.Contains(t, out, "polynomial")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linfit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("curve:\n  step: 0.5\nsnapshot:\n  compression: s2\n"), 0o600))

	out, _, err := execute(t, "--config", path, "config")
	require.NoError(t, err)
	require.Contains(t, out, "step: 0.5")
	require.Contains(t, out, "compression: s2")

	out, _, err = execute(t, "--config", path, "fit", "--x", "1 2", "--y", "1 2")
	require.NoError(t, err)
	require.Contains(t, out, "Curve: 3 points")

	_, _, err = execute(t, "--log-level", "trace", "config")
	require.ErrorContains(t, err, "Config.Log.Level failed 'oneof'")
}

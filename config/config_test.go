package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linfit/regression"
	"github.com/arloliu/linfit/snapshot"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 0.1, cfg.Curve.Step)
	require.True(t, cfg.Curve.Clamp)
	require.Equal(t, "none", cfg.Snapshot.Compression)
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())

	curve, err := regression.NewCurveConfig(cfg.CurveOptions()...)
	require.NoError(t, err)
	require.Equal(t, regression.DefaultCurveConfig(), curve)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
curve:
  step: 0.5
  clamp: false
snapshot:
  compression: zstd
  big_endian: true
log:
  level: debug
`))
	require.NoError(t, err)
	require.Equal(t, 0.5, cfg.Curve.Step)
	require.False(t, cfg.Curve.Clamp)
	require.Equal(t, regression.DefaultMaxPoints, cfg.Curve.MaxPoints)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	opts, err := cfg.SnapshotOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)

	data, err := snapshot.Encode(snapshot.Snapshot{}, opts...)
	require.NoError(t, err)
	info, err := snapshot.Inspect(data)
	require.NoError(t, err)
	require.True(t, info.Header.IsBigEndian())
	require.Equal(t, "Zstd", info.Header.Compression.String())
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero step", "curve:\n  step: 0\n", "Config.Curve.Step failed 'gt'"},
		{"negative max points", "curve:\n  max_points: -1\n", "Config.Curve.MaxPoints failed 'gte'"},
		{"compression", "snapshot:\n  compression: brotli\n", "Config.Snapshot.Compression failed 'oneof'"},
		{"log level", "log:\n  level: trace\n", "Config.Log.Level failed 'oneof'"},
		{"unknown key", "curve:\n  stepp: 1\n", "field stepp not found"},
		{"bad yaml", "curve: [", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	dir := t.TempDir()
	path := filepath.Join(dir, "linfit.yaml")

	want := Default()
	want.Curve.Step = 0.25
	want.Snapshot.Compression = "lz4"
	data, err := want.Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config file")
}

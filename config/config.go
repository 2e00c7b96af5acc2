// Package config loads linfit settings from YAML.
//
// Missing keys keep their defaults:
//
//	curve:
//	  step: 0.1
//	  clamp: true
//	  clamp_floor: 0
//	  max_points: 0 # 0 means unlimited
//	snapshot:
//	  compression: none
//	  big_endian: false
//	log:
//	  level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/regression"
	"github.com/arloliu/linfit/snapshot"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the full set of settings.
type Config struct {
	Curve    CurveConfig    `yaml:"curve"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Log      LogConfig      `yaml:"log"`
}

// CurveConfig controls how fitted lines are sampled.
type CurveConfig struct {
	Step       float64 `yaml:"step" validate:"gt=0"`
	Clamp      bool    `yaml:"clamp"`
	ClampFloor float64 `yaml:"clamp_floor"`
	MaxPoints  int     `yaml:"max_points" validate:"gte=0"`
}

// SnapshotConfig controls how snapshots are written.
type SnapshotConfig struct {
	Compression string `yaml:"compression" validate:"oneof=none zstd s2 lz4"`
	BigEndian   bool   `yaml:"big_endian"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	NoColor bool   `yaml:"no_color"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	curve := regression.DefaultCurveConfig()

	return Config{
		Curve: CurveConfig{
			Step:       curve.Step,
			Clamp:      curve.Clamp,
			ClampFloor: curve.ClampFloor,
			MaxPoints:  curve.MaxPoints,
		},
		Snapshot: SnapshotConfig{Compression: "none"},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads and validates the YAML file at path. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML on top of Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed '%s' (value: %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}

			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}

		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// CurveOptions converts the curve settings into sampling options.
func (c Config) CurveOptions() []regression.CurveOption {
	return []regression.CurveOption{
		regression.WithStep(c.Curve.Step),
		regression.WithClamp(c.Curve.Clamp),
		regression.WithClampFloor(c.Curve.ClampFloor),
		regression.WithMaxPoints(c.Curve.MaxPoints),
	}
}

// SnapshotOptions converts the snapshot settings into encoder options.
func (c Config) SnapshotOptions() ([]snapshot.EncoderOption, error) {
	compression, err := format.ParseCompressionType(c.Snapshot.Compression)
	if err != nil {
		return nil, err
	}

	opts := []snapshot.EncoderOption{snapshot.WithCompression(compression)}
	if c.Snapshot.BigEndian {
		opts = append(opts, snapshot.WithBigEndian())
	}

	return opts, nil
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

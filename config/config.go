// Package config loads and validates the pipeline's tunable parameters.
//
// Grounded on original_source/src/config.rs: the field set and numeric
// defaults are carried over unchanged; the text format (key=value lines,
// panicking on unknown keys) is replaced by YAML decoding with
// KnownFields(true), which rejects unknown keys the same way the original's
// parse_config did, but as a recoverable error rather than a panic.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors. UnknownConfigKey and UnparseableValue are the two fatal
// startup error kinds named in the core specification's §7.
var (
	// ErrUnknownConfigKey is returned when the YAML document contains a key
	// this Config does not recognize.
	ErrUnknownConfigKey = errors.New("config: unknown configuration key")

	// ErrUnparseableValue is returned when a recognized key holds a value
	// of the wrong type or shape.
	ErrUnparseableValue = errors.New("config: unparseable value")

	// ErrInvalidValue is returned when a value parses but is out of range
	// (e.g. a negative timespan).
	ErrInvalidValue = errors.New("config: invalid value")
)

// Config holds every tunable parameter of the detour-graph pipeline.
//
// Field units mirror the original exactly; see the table in spec.md §6.
type Config struct {
	WindowSize             int     `yaml:"window_size"`
	MinimumVelocity        float64 `yaml:"minimum_velocity"`
	EpsilonVelocity        float64 `yaml:"epsilon_velocity"`
	MotionDetectorTimespan float64 `yaml:"motion_detector_timespan"`
	ConnectionTimeout      float64 `yaml:"connection_timeout"`
	StopDiagonalMeters     float64 `yaml:"stop_diagonal_meters"`
	StopDurationMinutes    float64 `yaml:"stop_duration_minutes"`
	RelaxBboxMinutes       float64 `yaml:"relax_bbox_minutes"`
	RelaxBboxMeters        float64 `yaml:"relax_bbox_meters"`
	MaxHausdorffMeters     float64 `yaml:"max_hausdorff_meters"`
	VisvalingamThreshold   float64 `yaml:"visvalingam_threshold"`
	UTMZone                int     `yaml:"utm_zone"`
}

// Default returns the Config with the original implementation's defaults.
func Default() Config {
	return Config{
		WindowSize:             5,
		MinimumVelocity:        2.5,
		EpsilonVelocity:        1.5,
		MotionDetectorTimespan: 60000.0,
		ConnectionTimeout:      120000.0,
		StopDiagonalMeters:     50.0,
		StopDurationMinutes:    15.0,
		RelaxBboxMinutes:       30.0,
		RelaxBboxMeters:        50.0,
		MaxHausdorffMeters:     100.0,
		VisvalingamThreshold:   0.5,
		UTMZone:                32,
	}
}

// Load reads and validates a YAML configuration document from r, starting
// from Default() so any field the document omits keeps its default value.
// Unknown keys are rejected with ErrUnknownConfigKey; other decode errors
// (such as a value of the wrong type) with ErrUnparseableValue.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		if strings.Contains(err.Error(), "not found in type") {
			return Config{}, fmt.Errorf("%w: %v", ErrUnknownConfigKey, err)
		}

		return Config{}, fmt.Errorf("%w: %v", ErrUnparseableValue, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Validate rejects configurations with non-positive values on fields that
// must be strictly positive to avoid degenerate (infinite-loop or
// divide-by-zero) behavior downstream.
func (c Config) Validate() error {
	switch {
	case c.WindowSize < 2:
		return fmt.Errorf("%w: window_size must be >= 2", ErrInvalidValue)
	case c.MotionDetectorTimespan <= 0:
		return fmt.Errorf("%w: motion_detector_timespan must be > 0", ErrInvalidValue)
	case c.ConnectionTimeout <= 0:
		return fmt.Errorf("%w: connection_timeout must be > 0", ErrInvalidValue)
	case c.StopDurationMinutes <= 0:
		return fmt.Errorf("%w: stop_duration_minutes must be > 0", ErrInvalidValue)
	case c.MaxHausdorffMeters < 0:
		return fmt.Errorf("%w: max_hausdorff_meters must be >= 0", ErrInvalidValue)
	case c.VisvalingamThreshold < 0:
		return fmt.Errorf("%w: visvalingam_threshold must be >= 0", ErrInvalidValue)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: netgrowth/config
//
// config.go - run configuration, defaults, YAML loading and validation.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that failed validation or parsing.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Default values.
const (
	DefaultNodes      = 40
	DefaultIterations = 100
	DefaultC          = 1.0
	DefaultSeed       = 1
	DefaultLogLevel   = "info"
	DefaultMinSeed    = 4
	DefaultMaxSeed    = 16
)

// SeedEdges is the inclusive range of seeding attempts of the initializer.
type SeedEdges struct {
	Min int `yaml:"min" validate:"gte=1"`
	Max int `yaml:"max" validate:"gtefield=Min"`
}

// Layout tunes the force-directed layout of the frames document.
type Layout struct {
	Updates   int     `yaml:"updates" validate:"gte=0"`
	Repulsion float64 `yaml:"repulsion" validate:"gt=0"`
	Rate      float64 `yaml:"rate" validate:"gt=0"`
	Theta     float64 `yaml:"theta" validate:"gte=0"`
}

// Run is the full configuration of one simulation.
type Run struct {
	Nodes      int     `yaml:"nodes" validate:"gte=4"`
	Iterations int     `yaml:"iterations" validate:"gt=0"`
	C          float64 `yaml:"c" validate:"gt=0"`
	Seed       uint64  `yaml:"seed"`

	SeedEdges SeedEdges `yaml:"seed_edges"`

	// Output is the edge file; empty means graph_<n>_<k>_<c>.csv.
	Output string `yaml:"output"`
	// Frames enables the frames document; FramesPath empty means figure_<n>_<k>_<c>.json.
	Frames     bool   `yaml:"frames"`
	FramesPath string `yaml:"frames_path"`
	Layout     Layout `yaml:"layout"`
	// MetricsPath, when set, receives a Prometheus textfile dump.
	MetricsPath string `yaml:"metrics_path"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Dev      bool   `yaml:"dev"`
}

var validate = validator.New()

// Default returns the configuration used when nothing else is given.
func Default() Run {
	return Run{
		Nodes:      DefaultNodes,
		Iterations: DefaultIterations,
		C:          DefaultC,
		Seed:       DefaultSeed,
		SeedEdges:  SeedEdges{Min: DefaultMinSeed, Max: DefaultMaxSeed},
		Layout: Layout{
			Updates:   50,
			Repulsion: 1,
			Rate:      0.05,
			Theta:     0.2,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Run{}, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads YAML from r over Default and validates the result.
// An empty document yields Default.
func Decode(r io.Reader) (Run, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Run{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Run{}, err
	}

	return cfg, nil
}

// Validate checks every field constraint and joins all violations.
func (r Run) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch e.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be at least %s", field, strings.ToLower(e.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

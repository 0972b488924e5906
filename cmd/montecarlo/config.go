package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/R3mmurd/MonteCarlo/convergence"
	"github.com/R3mmurd/MonteCarlo/volume"
)

// errConfig marks configuration file and validation failures.
var errConfig = errors.New("invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the optional YAML configuration. Command-line flags override
// every value it sets.
type Config struct {
	Seed      *uint64         `yaml:"seed"`
	Workers   int             `yaml:"workers" validate:"gte=0"`
	LogLevel  string          `yaml:"log_level" validate:"oneof=debug info warn error"`
	Integrate IntegrateConfig `yaml:"integrate"`
	Pi        PiConfig        `yaml:"pi"`
	Spheres   SpheresConfig   `yaml:"spheres"`
	Generate  GenerateConfig  `yaml:"generate"`
	Converge  ConvergeConfig  `yaml:"converge"`
}

// IntegrateConfig holds the integrate command settings.
type IntegrateConfig struct {
	Samples int     `yaml:"samples" validate:"gt=0"`
	Func    string  `yaml:"func" validate:"required"`
	A       float64 `yaml:"a"`
	B       float64 `yaml:"b"`
}

// PiConfig holds the pi command settings.
type PiConfig struct {
	Samples int `yaml:"samples" validate:"gt=0"`
}

// SpheresConfig holds the spheres command settings.
type SpheresConfig struct {
	Samples   int `yaml:"samples" validate:"gt=0"`
	Threshold int `yaml:"threshold" validate:"gte=1"`
}

// GenerateConfig holds the generate command settings.
type GenerateConfig struct {
	Count     int     `yaml:"count" validate:"gt=0"`
	Extent    float64 `yaml:"extent" validate:"gte=0"`
	MinRadius float64 `yaml:"min_radius" validate:"gte=0"`
	MaxRadius float64 `yaml:"max_radius" validate:"gtefield=MinRadius"`
}

// ConvergeConfig holds the converge command settings.
type ConvergeConfig struct {
	Sizes []int `yaml:"sizes" validate:"min=2,dive,gt=0"`
	Runs  int   `yaml:"runs" validate:"gte=2"`
}

// DefaultConfig returns the settings used when no file or flag overrides them.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Integrate: IntegrateConfig{
			Samples: 1_000_000,
			Func:    "exp-x2",
			A:       0,
			B:       2,
		},
		Pi: PiConfig{Samples: 10_000_000},
		Spheres: SpheresConfig{
			Samples:   1_000_000,
			Threshold: volume.DefaultOverlapThreshold,
		},
		Generate: GenerateConfig{
			Count:     10,
			Extent:    5,
			MinRadius: 0.5,
			MaxRadius: 2,
		},
		Converge: ConvergeConfig{
			Sizes: []int{1_000, 4_000, 16_000, 64_000},
			Runs:  convergence.DefaultRuns,
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are
// rejected. The result is validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", errConfig, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: parse %s: %w", errConfig, path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the value constraints declared on the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	return nil
}

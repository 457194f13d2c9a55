// Package config carries the fixed constants of the reference run.
package config

import "github.com/san-kum/lorenz63/internal/dynamo"

// Reference run constants. These are baked in: the tool exposes no
// flag, file, or environment override for any of them.
const (
	DefaultDt    = 1e-3
	DefaultSteps = 99
)

// Config is the immutable description of a run: coefficients (in the
// reference run's labeling order), initial position, step size and
// step count. Tests substitute values here instead of patching
// globals; the CLI always uses Default().
type Config struct {
	Prandtl  float64    `yaml:"prandtl" json:"prandtl"`
	Rayleigh float64    `yaml:"rayleigh" json:"rayleigh"`
	Beta     float64    `yaml:"beta" json:"beta"`
	Initial  [3]float64 `yaml:"initial" json:"initial"`
	Dt       float64    `yaml:"dt" json:"dt"`
	Steps    int        `yaml:"steps" json:"steps"`
}

// RunConfig returns the step size and count in simulator form.
func (c Config) RunConfig() dynamo.Config {
	return dynamo.Config{Dt: c.Dt, Steps: c.Steps}
}

// InitialState returns the initial position as a fresh slice.
func (c Config) InitialState() []float64 {
	return []float64{c.Initial[0], c.Initial[1], c.Initial[2]}
}

func Default() Config {
	return Config{
		Prandtl:  10.0,
		Rayleigh: 8.0 / 3.0,
		Beta:     28.0,
		Initial:  [3]float64{1.0, 1.0, 1.0},
		Dt:       DefaultDt,
		Steps:    DefaultSteps,
	}
}

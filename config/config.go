// Package config loads the tunable parameters of the classification run —
// the implementation error rate and the stationary-mass threshold — from
// an optional YAML file, following the same viper-backed, non-global
// loading style used elsewhere in this stack for small app configs.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Params holds the numeric thresholds that parameterize strategy
// classification. Zero value is not meaningful; use Defaults or Load.
type Params struct {
	Epsilon float64 `mapstructure:"epsilon"`
	Theta   float64 `mapstructure:"theta"`
	Workers int     `mapstructure:"workers"`
}

// Defaults returns the parameters the original analysis used when none
// are supplied: epsilon=1e-5, theta=0.95, workers=0 (caller picks GOMAXPROCS).
func Defaults() Params {
	return Params{Epsilon: 0.00001, Theta: 0.95, Workers: 0}
}

// Load reads Params from a YAML file at path, falling back to Defaults
// for any field the file omits. A viper instance is created fresh per
// call rather than relying on viper's package-level global, so Load is
// safe to call more than once with different files in the same process.
func Load(path string) (Params, error) {
	p := Defaults()

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	vp.SetDefault("epsilon", p.Epsilon)
	vp.SetDefault("theta", p.Theta)
	vp.SetDefault("workers", p.Workers)

	if err := vp.ReadInConfig(); err != nil {
		return Params{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	if err := vp.Unmarshal(&p); err != nil {
		return Params{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}

	return p, nil
}

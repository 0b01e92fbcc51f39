package app

import (
	"github.com/spf13/pflag"

	"cloud-gen/internal/cloud"
)

// Config represents the command-line parameters for the previewer.
type Config struct {
	Scale  float64
	Seed   int64
	Params cloud.Params
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 1, Seed: 42, Params: cloud.DefaultParams()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first cloud")
	fs.IntVar(&c.Params.Size, "size", c.Params.Size, "cloud side length in pixels")
	fs.IntVar(&c.Params.Density, "density", c.Params.Density, "circles per cloud")
	fs.Float64Var(&c.Params.Spread, "spread", c.Params.Spread, "circle center spread")
}

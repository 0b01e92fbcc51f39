package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"cloud-gen/internal/cloud"
)

// EnvPath names the environment variable consulted when no config path is given.
const EnvPath = "CLOUDGEN_CONFIG"

// Config is the root of a cloudgen YAML file. Every field is optional;
// missing values keep their defaults.
type Config struct {
	Cloud cloud.Params `yaml:"cloud"`
	Batch BatchConfig  `yaml:"batch"`
}

// BatchConfig holds defaults for the batch command line flags.
type BatchConfig struct {
	Dir      string `yaml:"dir"`
	Parallel bool   `yaml:"parallel"`
	Workers  int    `yaml:"workers"`
	Seed     int64  `yaml:"seed"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Cloud: cloud.DefaultParams(),
		Batch: BatchConfig{Dir: "clouds"},
	}
}

// Load reads a YAML file over the defaults. If path is empty, the
// CLOUDGEN_CONFIG environment variable is tried; if that is empty too, the
// defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Cloud.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid cloud section in %s", path)
	}
	return cfg, nil
}

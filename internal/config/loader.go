package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load builds the configuration from a YAML file plus environment
// variables, with ENV taking priority over the file and env-default tags
// filling the rest. CONFIG_PATH selects the file (default "./config.yaml");
// a missing default file is fine, a missing explicit one is an error.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit {
		path = "./config.yaml"
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

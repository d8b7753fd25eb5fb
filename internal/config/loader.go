package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is the config file looked for in a dataset checkout when
// CONFIG_PATH is not set. The env-defaults already describe a standard
// checkout (raw/, etc/ and cldf/ under the working directory), so the
// fallback file is optional; a path set via CONFIG_PATH must exist.
const defaultPath = "./config.yaml"

// Load reads the configuration for a dataset build.
// Priority: environment variables > YAML file > env-default tags.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	fileRequired := path != ""
	if path == "" {
		path = defaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case fileRequired:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		// Optional fallback file is absent: env + defaults describe
		// the standard checkout layout.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

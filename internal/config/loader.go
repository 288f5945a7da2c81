package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables, then
// normalizes and validates it.
//
// Priority is ENV > YAML > env-default tags. The file is CONFIG_PATH, or
// ./config.yaml when unset; a missing default file means ENV only, a missing
// explicit file is an error. CRON_SECRET_FILE, when set, replaces the cron
// secret with the file's contents so mounted secrets can be used directly.
func Load() (*Config, error) {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	explicit = explicit && path != ""
	if !explicit {
		path = defaultConfigPath
	}

	cfg, err := read(path, explicit)
	if err != nil {
		return nil, err
	}

	if secretFile := os.Getenv("CRON_SECRET_FILE"); secretFile != "" {
		raw, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("config: cron secret file: %w", err)
		}
		cfg.Cron.Secret = string(raw)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return cfg, nil
}

func read(path string, explicit bool) (*Config, error) {
	var cfg Config

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

	return &cfg, nil
}

// normalize strips whitespace that secret stores and YAML block scalars tend
// to leave behind, and lower-cases the enumerated settings.
func (c *Config) normalize() {
	c.Cron.Secret = strings.TrimSpace(c.Cron.Secret)
	c.Messaging.AccountSID = strings.TrimSpace(c.Messaging.AccountSID)
	c.Messaging.AuthToken = strings.TrimSpace(c.Messaging.AuthToken)
	c.Messaging.DefaultRegion = strings.ToUpper(strings.TrimSpace(c.Messaging.DefaultRegion))
	c.Telemetry.Exporter = strings.ToLower(strings.TrimSpace(c.Telemetry.Exporter))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

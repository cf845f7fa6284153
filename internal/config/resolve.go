package config

import (
	env "github.com/caarlos0/env/v11"

	"github.com/bender-renderfarm/bender-config/internal/logging"
)

// environment holds the environment variables the tool recognizes.
type environment struct {
	ConfigPath string `env:"BENDER_CONFIG"`
}

// ResolvePath returns the configuration file location. An explicit flag
// value wins, then the BENDER_CONFIG environment variable, then the
// default location.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	var e environment
	if err := env.Parse(&e); err != nil {
		logging.Debug("failed to parse environment", "error", err)
	} else if e.ConfigPath != "" {
		return e.ConfigPath
	}

	return DefaultConfigPath
}

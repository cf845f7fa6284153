package cmd

import (
	"github.com/bender-renderfarm/bender-config/internal/app"
	"github.com/bender-renderfarm/bender-config/internal/config"
)

// configPath returns the resolved configuration file location.
func configPath() string {
	return app.Default.ConfigPath
}

// profilesDir returns the profiles directory next to the config file.
func profilesDir() string {
	return app.Default.ProfilesDir()
}

// loadConfig loads the configuration from the resolved location.
func loadConfig() (*config.Config, error) {
	return app.Default.Load()
}

// loadConfigOrDefault loads the configuration, falling back to defaults
// when no file exists yet.
func loadConfigOrDefault() (*config.Config, error) {
	return app.Default.LoadOrDefault()
}

// saveConfig writes the configuration to the resolved location.
func saveConfig(cfg *config.Config) error {
	return app.Default.Save(cfg)
}

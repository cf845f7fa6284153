// Package app provides the application context for bender-config.
// It allows dependency injection for testing.
package app

import (
	"github.com/bender-renderfarm/bender-config/internal/config"
	errs "github.com/bender-renderfarm/bender-config/internal/errors"
)

// App holds the application dependencies
type App struct {
	// ConfigPath is the resolved location of the configuration file
	ConfigPath string
}

// Option is a function that configures the App
type Option func(*App)

// WithConfigPath sets a custom configuration file location
func WithConfigPath(path string) Option {
	return func(a *App) {
		a.ConfigPath = path
	}
}

// New creates a new App with the given options.
// If no config path is provided via WithConfigPath, it is resolved from
// the environment and the default location.
func New(opts ...Option) *App {
	app := &App{
		ConfigPath: config.ResolvePath(""),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Load reads the configuration from the app's config path
func (a *App) Load() (*config.Config, error) {
	return config.Load(a.ConfigPath)
}

// LoadOrDefault reads the configuration from the app's config path,
// falling back to defaults when no file exists yet. Parse and
// validation errors are still reported.
func (a *App) LoadOrDefault() (*config.Config, error) {
	cfg, err := a.Load()
	if err != nil {
		if errs.IsNotFound(err) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the app's config path
func (a *App) Save(cfg *config.Config) error {
	return config.Save(cfg, a.ConfigPath)
}

// Reset overwrites the configuration at the app's config path with the
// built-in defaults
func (a *App) Reset() error {
	return a.Save(config.Default())
}

// ProfilesDir returns the profiles directory for the app's config path
func (a *App) ProfilesDir() string {
	return config.ProfilesDir(a.ConfigPath)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}

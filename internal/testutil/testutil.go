// Package testutil provides test utilities for bender-config tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bender-renderfarm/bender-config/internal/app"
	"github.com/bender-renderfarm/bender-config/internal/config"
)

// TestEnv holds the test environment
type TestEnv struct {
	T           *testing.T
	TmpDir      string
	ConfigPath  string
	ProfilesDir string
	App         *app.App
	cleanup     func()
}

// NewTestEnv creates a new test environment with a temporary config
// location and installs it as the default app instance.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	testApp := app.New(app.WithConfigPath(configPath))

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)

	env := &TestEnv{
		T:           t,
		TmpDir:      tmpDir,
		ConfigPath:  configPath,
		ProfilesDir: config.ProfilesDir(configPath),
		App:         testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// WriteConfig saves cfg at the environment's config path
func (e *TestEnv) WriteConfig(cfg *config.Config) {
	e.T.Helper()

	if err := config.Save(cfg, e.ConfigPath); err != nil {
		e.T.Fatalf("Failed to write config: %v", err)
	}
}

// WriteRaw writes raw content at the environment's config path
func (e *TestEnv) WriteRaw(content string) {
	e.T.Helper()

	if err := os.WriteFile(e.ConfigPath, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write config file: %v", err)
	}
}

// AddProfile stores cfg as a named profile in the environment
func (e *TestEnv) AddProfile(name string, cfg *config.Config) {
	e.T.Helper()

	if err := config.SaveProfile(e.ProfilesDir, name, cfg); err != nil {
		e.T.Fatalf("Failed to save profile: %v", err)
	}
}

// ConfigExists checks if a config file exists at the environment path
func (e *TestEnv) ConfigExists() bool {
	_, err := os.Stat(e.ConfigPath)
	return err == nil
}

// ModifiedConfig returns a valid non-default config for testing
func ModifiedConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Host = "render.example.com"
	cfg.Server.Port = 7180
	cfg.Limits.MaxWorkers = 16
	return cfg
}

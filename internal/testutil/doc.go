// Package testutil provides test fixtures and utilities.
//
// This package contains embedded TOML fixtures and helper functions for
// loading valid and invalid configurations in unit tests.
//
// # Fixtures
//
// TOML fixtures are embedded using go:embed:
//
//	fixtures/valid_config.toml
//	fixtures/partial_config.toml
//	fixtures/invalid_config.toml
//	fixtures/malformed_config.toml
//
// # Loading Fixtures
//
// Helper functions load and parse fixtures into typed config values:
//
//	cfg, err := testutil.ValidConfig()
//	cfg, err := testutil.PartialConfig()
//	data, err := testutil.InvalidConfigData()
//	data, err := testutil.MalformedConfigData()
//
// # Test Environment
//
// NewTestEnv creates a temporary config location and installs it as the
// default app instance for the duration of the test:
//
//	func TestShow(t *testing.T) {
//	    env := testutil.NewTestEnv(t)
//	    env.WriteConfig(testutil.ModifiedConfig())
//	    // run commands against env.ConfigPath
//	}
package testutil

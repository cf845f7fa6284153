// Package logging provides logging utilities for bender-config.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("loading config", "path", path)
//	logging.Warn("ignoring unrecognized keys", "keys", keys)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Writing configuration to %s...", path)
//	logging.UserSuccess("Configuration saved to %s", path)
//	logging.UserWarning("Configuration at %s is not valid: %v", path, err)
//	logging.UserError("Failed to save configuration: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging

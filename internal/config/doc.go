// Package config owns the in-memory representation of the bender
// render-farm configuration and its mapping to the persisted TOML form.
//
// # Configuration File
//
// The configuration lives in a single TOML file, by default
// /etc/bender/config.toml:
//
//	[server]
//	host = "localhost"
//	port = 5556
//
//	[paths]
//	config = "/etc/bender/config.toml"
//	private = "./private"
//	upload = "/data"
//
//	[limits]
//	upload = 2
//	max_workers = 4
//
// # Round-Trip Fidelity
//
// The central correctness property of this package is lossless,
// deterministic serialization: saving a Config and loading it back
// reproduces an equal value, and serializing the same Config twice
// produces byte-identical output. Fields are emitted in a fixed
// canonical order. Unrecognized keys found while loading are dropped
// with a warning; the policy is stable across repeated load/save
// cycles.
//
// # Loading and Saving
//
//	cfg, err := config.Load(path)   // NotFound / ParseError / ValidationError
//	err = config.Save(cfg, path)    // atomic: temp file + rename
//
// Save never leaves a partially written file at the target path: the
// content is written to a temporary file in the same directory and
// renamed into place.
//
// # Typed Field Access
//
// The field set is closed. CLI-facing access goes through a registry of
// dotted keys ("server.port", "limits.max_workers", ...):
//
//	v, err := cfg.Get("limits.max_workers")
//	err = cfg.Set("limits.max_workers", "16")
//
// Set validates the value against the field's domain and leaves the
// Config unchanged when validation fails.
//
// # Profiles
//
// Named presets are stored as TOML files in a profiles directory next
// to the configuration file. Profile names are validated and joined
// with filepath-securejoin so they cannot escape that directory.
package config

package config

import (
	"strconv"

	"github.com/bender-renderfarm/bender-config/internal/errors"
)

// field binds a dotted key to typed accessors on Config. The registry is
// the only place where configuration fields are addressed by string; the
// rest of the codebase goes through the struct members directly.
type field struct {
	key string
	get func(*Config) string
	set func(*Config, string) error
}

// fieldRegistry lists every recognized field in canonical order.
var fieldRegistry = []field{
	{
		key: "server.host",
		get: func(c *Config) string { return c.Server.Host },
		set: func(c *Config, v string) error {
			c.Server.Host = v
			return nil
		},
	},
	{
		key: "server.port",
		get: func(c *Config) string { return strconv.Itoa(c.Server.Port) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.FieldValidation("server.port", "must be an integer")
			}
			c.Server.Port = n
			return nil
		},
	},
	{
		key: "paths.config",
		get: func(c *Config) string { return c.Paths.Config },
		set: func(c *Config, v string) error {
			c.Paths.Config = v
			return nil
		},
	},
	{
		key: "paths.private",
		get: func(c *Config) string { return c.Paths.Private },
		set: func(c *Config, v string) error {
			c.Paths.Private = v
			return nil
		},
	},
	{
		key: "paths.upload",
		get: func(c *Config) string { return c.Paths.Upload },
		set: func(c *Config, v string) error {
			c.Paths.Upload = v
			return nil
		},
	},
	{
		key: "limits.upload",
		get: func(c *Config) string { return strconv.Itoa(c.Limits.Upload) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.FieldValidation("limits.upload", "must be an integer")
			}
			c.Limits.Upload = n
			return nil
		},
	},
	{
		key: "limits.max_workers",
		get: func(c *Config) string { return strconv.Itoa(c.Limits.MaxWorkers) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.FieldValidation("limits.max_workers", "must be an integer")
			}
			c.Limits.MaxWorkers = n
			return nil
		},
	},
}

// Keys returns the recognized field keys in canonical order.
func Keys() []string {
	keys := make([]string, len(fieldRegistry))
	for i, f := range fieldRegistry {
		keys[i] = f.key
	}
	return keys
}

func lookup(key string) (field, bool) {
	for _, f := range fieldRegistry {
		if f.key == key {
			return f, true
		}
	}
	return field{}, false
}

// Get returns the value of a field as a string. It only fails for keys
// outside the recognized field set.
func (c *Config) Get(key string) (string, error) {
	f, ok := lookup(key)
	if !ok {
		return "", errors.UnknownField(key)
	}
	return f.get(c), nil
}

// Set parses value and assigns it to the named field. The assignment is
// validated against the field's domain before the Config is touched, so
// a failed Set leaves the Config unchanged.
func (c *Config) Set(key, value string) error {
	f, ok := lookup(key)
	if !ok {
		return errors.UnknownField(key)
	}

	// Apply to a copy first. Config is a flat value type, so this is a
	// full deep copy.
	updated := *c
	if err := f.set(&updated, value); err != nil {
		return err
	}
	if err := updated.Validate(); err != nil {
		return err
	}

	*c = updated
	return nil
}

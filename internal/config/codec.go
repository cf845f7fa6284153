package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bender-renderfarm/bender-config/internal/errors"
	"github.com/bender-renderfarm/bender-config/internal/logging"
)

// Encode serializes the Config to its canonical TOML form. The encoder
// emits fields in struct declaration order, so equal Config values
// always produce byte-identical output.
func Encode(c *Config) (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, "failed to encode config", err)
	}
	return buf.String(), nil
}

// Decode parses a Config from TOML text. Missing fields keep their
// defaults; unrecognized keys are dropped with a warning so repeated
// load/save cycles stay stable. The result is validated before being
// returned.
func Decode(text string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ExitParseError, "malformed TOML", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logging.Warn("ignoring unrecognized configuration keys", "keys", keys)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
//
// It fails with a NotFound error when no file exists, a ParseError when
// the content is not well-formed TOML, and a ValidationError when a
// recognized field is outside its domain.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(path)
		}
		return nil, errors.IO("read config", err)
	}

	cfg, err := Decode(string(data))
	if err != nil {
		if errors.IsParseError(err) {
			return nil, errors.ParseError(path, err)
		}
		return nil, err
	}

	logging.Debug("loaded config", "path", path)
	return cfg, nil
}

// Save validates and serializes the Config, then writes it to path
// atomically: the content goes to a temporary file in the target
// directory which is renamed into place. On any failure the previous
// file at path is left unchanged.
func Save(c *Config, path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	out, err := Encode(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".bender-config-*.tmp")
	if err != nil {
		return errors.IO("create temporary config file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(out); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.IO("write config", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.IO("sync config", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.IO("close config", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.IO("chmod config", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.IO("rename config into place", err)
	}

	logging.Debug("saved config", "path", path)
	return nil
}

// WriteChanges saves the Config to the location stored in paths.config.
func (c *Config) WriteChanges() error {
	return Save(c, c.Paths.Config)
}

// ReadChanges replaces the Config with the content of the file at
// paths.config.
func (c *Config) ReadChanges() error {
	loaded, err := Load(c.Paths.Config)
	if err != nil {
		return err
	}
	*c = *loaded
	return nil
}

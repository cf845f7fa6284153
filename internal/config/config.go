package config

import (
	"fmt"
	"strings"

	"github.com/bender-renderfarm/bender-config/internal/errors"
)

const (
	// DefaultConfigPath is where render nodes expect the shared
	// configuration file.
	DefaultConfigPath = "/etc/bender/config.toml"

	// ProfilesDirName is the directory next to the configuration file
	// that holds named configuration presets.
	ProfilesDirName = "profiles"
)

// Domain bounds for numeric fields.
const (
	MinPort       = 1
	MaxPort       = 65535
	MinUploadGiB  = 1
	MaxUploadGiB  = 1024
	MinMaxWorkers = 1
	MaxMaxWorkers = 1024
)

// Config is the render-farm wide configuration shared by clients and
// servers. The field set is closed: every recognized setting is a typed
// struct member, and string keys exist only at the CLI/serialization
// boundary (see fields.go).
type Config struct {
	Server Server `toml:"server"`
	Paths  Paths  `toml:"paths"`
	Limits Limits `toml:"limits"`
}

// Server describes how render nodes reach the bender server.
type Server struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Paths holds the filesystem locations the farm operates on.
type Paths struct {
	Config  string `toml:"config"`
	Private string `toml:"private"`
	Upload  string `toml:"upload"`
}

// Limits holds resource limits for render nodes.
type Limits struct {
	Upload     int `toml:"upload"`
	MaxWorkers int `toml:"max_workers"`
}

// Default returns a Config populated entirely with built-in defaults.
// It never fails, and every recognized field has a defined value.
func Default() *Config {
	return &Config{
		Server: Server{
			Host: "localhost",
			Port: 5556,
		},
		Paths: Paths{
			Config:  DefaultConfigPath,
			Private: "./private",
			Upload:  "/data",
		},
		Limits: Limits{
			Upload:     2,
			MaxWorkers: 4,
		},
	}
}

// IsDefault reports whether the Config still has the default values.
func (c *Config) IsDefault() bool {
	return *c == *Default()
}

// Validate checks that every field of the Config is inside its domain.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Paths.Validate(); err != nil {
		return err
	}
	return c.Limits.Validate()
}

// Validate checks that the Server section is valid.
func (s *Server) Validate() error {
	if err := ValidateHost(s.Host); err != nil {
		return err
	}
	if s.Port < MinPort || s.Port > MaxPort {
		return errors.FieldValidation("server.port",
			fmt.Sprintf("must be between %d and %d (got %d)", MinPort, MaxPort, s.Port))
	}
	return nil
}

// Validate checks that the Paths section is valid.
func (p *Paths) Validate() error {
	if err := ValidatePath("paths.config", p.Config); err != nil {
		return err
	}
	if err := ValidatePath("paths.private", p.Private); err != nil {
		return err
	}
	return ValidatePath("paths.upload", p.Upload)
}

// Validate checks that the Limits section is valid.
func (l *Limits) Validate() error {
	if l.Upload < MinUploadGiB || l.Upload > MaxUploadGiB {
		return errors.FieldValidation("limits.upload",
			fmt.Sprintf("must be between %d and %d GiB (got %d)", MinUploadGiB, MaxUploadGiB, l.Upload))
	}
	if l.MaxWorkers < MinMaxWorkers || l.MaxWorkers > MaxMaxWorkers {
		return errors.FieldValidation("limits.max_workers",
			fmt.Sprintf("must be between %d and %d (got %d)", MinMaxWorkers, MaxMaxWorkers, l.MaxWorkers))
	}
	return nil
}

// ValidateHost checks that a value is usable as a server host: a single
// non-empty token without whitespace or a port suffix.
func ValidateHost(host string) error {
	if host == "" {
		return errors.FieldValidation("server.host", "must not be empty")
	}
	if strings.ContainsAny(host, " \t\n") {
		return errors.FieldValidation("server.host", "must not contain whitespace")
	}
	if strings.Contains(host, "://") {
		return errors.FieldValidation("server.host", "must be a bare host, not a URL")
	}
	return nil
}

// ValidatePath checks that a path field is non-empty.
func ValidatePath(key, path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.FieldValidation(key, "must not be empty")
	}
	return nil
}

// Addr returns the host:port address of the bender server.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

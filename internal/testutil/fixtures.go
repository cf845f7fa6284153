package testutil

import (
	"embed"

	"github.com/bender-renderfarm/bender-config/internal/config"
)

//go:embed fixtures/*.toml
var fixturesFS embed.FS

// LoadFixture loads a TOML fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadConfigFixture loads and decodes a config fixture.
func LoadConfigFixture(name string) (*config.Config, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	return config.Decode(string(data))
}

// ValidConfig returns the valid config fixture.
func ValidConfig() (*config.Config, error) {
	return LoadConfigFixture("valid_config.toml")
}

// PartialConfig returns the fixture that only sets some fields.
func PartialConfig() (*config.Config, error) {
	return LoadConfigFixture("partial_config.toml")
}

// InvalidConfigData returns the raw fixture with an out-of-domain value.
func InvalidConfigData() ([]byte, error) {
	return LoadFixture("invalid_config.toml")
}

// MalformedConfigData returns the raw fixture with broken TOML.
func MalformedConfigData() ([]byte, error) {
	return LoadFixture("malformed_config.toml")
}

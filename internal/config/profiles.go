package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/bender-renderfarm/bender-config/internal/errors"
)

// profileNameRegex validates profile names. Names must start with a
// lowercase letter or digit, followed by lowercase letters, digits,
// underscores, or hyphens, at most 63 characters total.
var profileNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidateProfileName checks if a profile name is valid.
func ValidateProfileName(name string) error {
	if name == "" {
		return errors.Validation("profile name cannot be empty")
	}
	if !profileNameRegex.MatchString(name) {
		return errors.Validation(fmt.Sprintf(
			"invalid profile name %q: must start with a lowercase letter or digit and contain only lowercase letters, digits, underscores, or hyphens", name))
	}
	return nil
}

// ProfilesDir returns the profiles directory next to the configuration
// file at configPath.
func ProfilesDir(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), ProfilesDirName)
}

// profilePath resolves a profile name to a file path, confined to dir.
// The name is validated and the join is performed with securejoin so a
// hostile name cannot escape the profiles directory.
func profilePath(dir, name string) (string, error) {
	if err := ValidateProfileName(name); err != nil {
		return "", err
	}
	path, err := securejoin.SecureJoin(dir, name+".toml")
	if err != nil {
		return "", errors.Validation("invalid profile name: " + err.Error())
	}
	return path, nil
}

// ListProfiles returns the names of all profiles in dir, sorted. A
// missing profiles directory yields an empty list.
func ListProfiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.IO("read profiles directory", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".toml")
		if ValidateProfileName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// LoadProfile loads the named profile from dir.
func LoadProfile(dir, name string) (*Config, error) {
	path, err := profilePath(dir, name)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// SaveProfile stores cfg as the named profile in dir, creating the
// directory if needed.
func SaveProfile(dir, name string, cfg *Config) error {
	path, err := profilePath(dir, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.IO("create profiles directory", err)
	}
	return Save(cfg, path)
}

// DeleteProfile removes the named profile from dir.
func DeleteProfile(dir, name string) error {
	path, err := profilePath(dir, name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound(path)
		}
		return errors.IO("delete profile", err)
	}
	return nil
}

// ProfileExists checks if the named profile exists in dir.
func ProfileExists(dir, name string) bool {
	path, err := profilePath(dir, name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

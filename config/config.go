// Package config loads and stores launcher settings.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/reglet-dev/reglet-maplaunch/directions"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the on-disk launcher configuration.
type Config struct {
	// HostIdentifier names the embedding application, sent as Moovit's partner_id.
	HostIdentifier string `yaml:"host_identifier,omitempty"`

	// PlatformVersion is the host OS version; below 9.0 HERE uses its legacy scheme.
	PlatformVersion string `yaml:"platform_version,omitempty"`

	// DefaultMode applies when a request names no transport mode.
	DefaultMode directions.TransportMode `yaml:"default_mode,omitempty"`

	// Installed lists glob patterns over URI scheme names the host can open,
	// e.g. "comgooglemaps" or "yandex*".
	Installed []string `yaml:"installed,omitempty"`

	// Locale selects the display names translation, e.g. "fr" or "fr-CA".
	Locale string `yaml:"locale,omitempty"`

	// DisplayNames points to a localized display names file. A relative path
	// is resolved against the configuration file's directory.
	DisplayNames string `yaml:"display_names,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{DefaultMode: directions.DefaultMode}
}

// Validate checks field values.
func (c *Config) Validate() error {
	var errs []error
	if c.DefaultMode != "" && !c.DefaultMode.IsValid() {
		errs = append(errs, fmt.Errorf("default_mode: unknown transport mode %q", c.DefaultMode))
	}
	if c.PlatformVersion != "" {
		if _, err := semver.NewVersion(c.PlatformVersion); err != nil {
			errs = append(errs, fmt.Errorf("platform_version: %w", err))
		}
	}
	for _, p := range c.Installed {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Errorf("installed: bad pattern %q", p))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Version returns the parsed platform version, or nil when none is set.
func (c *Config) Version() (*semver.Version, error) {
	if c.PlatformVersion == "" {
		return nil, nil
	}
	return semver.NewVersion(c.PlatformVersion)
}

// Mode returns DefaultMode, falling back to directions.DefaultMode.
func (c *Config) Mode() directions.TransportMode {
	if c.DefaultMode == "" {
		return directions.DefaultMode
	}
	return c.DefaultMode
}

// DisplayNamesPath resolves DisplayNames relative to the directory of configPath.
func (c *Config) DisplayNamesPath(configPath string) string {
	if c.DisplayNames == "" || filepath.IsAbs(c.DisplayNames) {
		return c.DisplayNames
	}
	return filepath.Join(filepath.Dir(configPath), c.DisplayNames)
}

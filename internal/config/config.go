// Package config loads the dashboard widget configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/akwxlab/marinedash"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// maxConfigSize limits config input to prevent memory exhaustion.
const maxConfigSize = 1 << 20

// configDirName is the subdirectory searched under the user config dir.
const configDirName = "marinedash"

// Config holds all settings for the widget backend.
type Config struct {
	Office   string      `yaml:"office"`   // default issuing office code
	Endpoint string      `yaml:"endpoint"` // bulletin API base URL (empty = production)
	Fetch    FetchConfig `yaml:"fetch"`
	HTTP     HTTPConfig  `yaml:"http"`
	Log      LogConfig   `yaml:"log"`
}

// FetchConfig defines upstream request behavior.
type FetchConfig struct {
	TimeoutSeconds  int `yaml:"timeoutSeconds"`  // per-request timeout
	CacheTTLSeconds int `yaml:"cacheTTLSeconds"` // bulletin freshness hint
}

// HTTPConfig defines the serve-mode listener.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig defines structured logging output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Timeout returns the upstream request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// CacheTTL returns the bulletin cache TTL.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Fetch.CacheTTLSeconds) * time.Second
}

// DefaultConfig returns the production defaults: Anchorage office, 30 second
// cache hint, text logging at info.
func DefaultConfig() *Config {
	return &Config{
		Office: marinedash.DefaultOffice,
		Fetch: FetchConfig{
			TimeoutSeconds:  10,
			CacheTTLSeconds: 30,
		},
		HTTP: HTTPConfig{Addr: ":8080"},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

// Validate checks field values. Called automatically by Load, but available
// for consumers who construct Config manually.
func (c *Config) Validate() error {
	if !marinedash.ValidOfficeCode(c.Office) {
		return fmt.Errorf("office: invalid code %q", c.Office)
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeoutSeconds: must be positive, got %d", c.Fetch.TimeoutSeconds)
	}
	if c.Fetch.CacheTTLSeconds < 0 {
		return fmt.Errorf("fetch.cacheTTLSeconds: must not be negative, got %d", c.Fetch.CacheTTLSeconds)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: invalid value %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: invalid value %q", c.Log.Format)
	}
	return nil
}

// Load reads configuration from a file path or config name, layered over
// DefaultConfig. If nameOrPath contains a path separator, it's treated as a
// file path; otherwise it's searched in standard locations. Returns
// ErrConfigNotFound (wrapped) when no file exists.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrConfigParse, maxConfigSize)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/marinedash/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Package config loads the settings shared by the binarycookies commands.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cixtor/binarycookies/v2/jar"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the binarycookies configuration
type Config struct {
	Jar     Jar     `yaml:"jar"`
	Cookie  Cookie  `yaml:"cookie"`
	Server  Server  `yaml:"server"`
	Logging Logging `yaml:"logging"`
}

// Jar locates the cookie jar of the target application.
type Jar struct {
	LibraryDir string `yaml:"library_dir"`
	BundleID   string `yaml:"bundle_id"`
}

// Cookie holds the attributes of the session cookie written by `write`.
type Cookie struct {
	Domain   string        `yaml:"domain"`
	Name     string        `yaml:"name"`
	Path     string        `yaml:"path"`
	Secure   bool          `yaml:"secure"`
	HttpOnly bool          `yaml:"http_only"`
	TTL      time.Duration `yaml:"ttl"`
}

// Server configures `serve`.
type Server struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	library := "Library"

	if home, err := os.UserHomeDir(); err == nil {
		library = filepath.Join(home, "Library")
	}

	return &Config{
		Jar: Jar{
			LibraryDir: library,
		},
		Cookie: Cookie{
			Path:     "/",
			Secure:   true,
			HttpOnly: true,
			TTL:      jar.DefaultTTL,
		},
		Server: Server{
			Bind: "127.0.0.1",
			Port: 9310,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path. Settings missing
// from the file keep their default value.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Write prints the configuration as YAML.
func Write(w io.Writer, config *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return enc.Close()
}

// DefaultConfigPath returns ~/.config/binarycookies/config.yaml, or a file
// in the working directory when the home directory is unknown.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./binarycookies.yaml"
	}

	return filepath.Join(homeDir, ".config", "binarycookies", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", ErrInvalidConfig, c.Server.Port)
	}

	if c.Cookie.TTL < 0 {
		return fmt.Errorf("%w: negative cookie ttl", ErrInvalidConfig)
	}

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	for _, s := range []string{c.Cookie.Domain, c.Cookie.Name, c.Cookie.Path} {
		if strings.IndexByte(s, 0) >= 0 {
			return fmt.Errorf("%w: cookie attributes cannot contain NUL", ErrInvalidConfig)
		}
	}

	return nil
}

// Session returns the session cookie described by the configuration.
func (c *Config) Session() jar.Session {
	return jar.Session{
		Domain:   c.Cookie.Domain,
		Name:     c.Cookie.Name,
		Path:     c.Cookie.Path,
		Secure:   c.Cookie.Secure,
		HttpOnly: c.Cookie.HttpOnly,
		TTL:      c.Cookie.TTL,
	}
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, fmt.Errorf("%w: logging level %q", ErrInvalidConfig, name)
	}

	return level, nil
}

// Package config manages application configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Configuration keys.
const (
	KeyLogLevel  = "TASKBOARD_LOG_LEVEL"
	KeyLogFormat = "TASKBOARD_LOG_FORMAT"
	KeyHTTPAddr  = "TASKBOARD_HTTP_ADDR"
	KeySeed      = "TASKBOARD_SEED"
	KeySeedFile  = "TASKBOARD_SEED_FILE"
	KeyUser      = "TASKBOARD_USER"
)

// Defaults for keys that have one.
var defaults = map[string]string{
	KeyLogLevel:  "info",
	KeyLogFormat: "json",
	KeyHTTPAddr:  ":8080",
	KeySeed:      "true",
	KeyUser:      "u-admin",
}

// Keys lists every recognized key in display order.
var Keys = []string{KeyLogLevel, KeyLogFormat, KeyHTTPAddr, KeySeed, KeySeedFile, KeyUser}

// Config holds the application configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	HTTPAddr  string
	Seed      bool
	SeedFile  string
	User      string

	rawSeed string
}

// Load reads configuration from a .env file in the specified directory.
// Values resolve with precedence: local .env > global config (~/.taskboard/config)
// > environment > default.
func Load(dir string) (*Config, error) {
	localEnvMap, err := godotenv.Read(GetConfigPath(dir))
	if err != nil {
		// If file doesn't exist, use empty map
		localEnvMap = make(map[string]string)
	}

	globalEnvMap, err := godotenv.Read(GetGlobalConfigPath())
	if err != nil {
		globalEnvMap = make(map[string]string)
	}

	cfg := build(func(key string) string {
		if value, ok := localEnvMap[key]; ok && value != "" {
			return value
		}
		if value, ok := globalEnvMap[key]; ok && value != "" {
			return value
		}
		if value := os.Getenv(key); value != "" {
			return value
		}
		return defaults[key]
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func build(lookup func(key string) string) *Config {
	cfg := &Config{
		LogLevel:  strings.ToLower(lookup(KeyLogLevel)),
		LogFormat: strings.ToLower(lookup(KeyLogFormat)),
		HTTPAddr:  lookup(KeyHTTPAddr),
		SeedFile:  lookup(KeySeedFile),
		User:      lookup(KeyUser),
		rawSeed:   lookup(KeySeed),
	}
	cfg.Seed, _ = strconv.ParseBool(cfg.rawSeed)
	return cfg
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("%s must be one of debug, info, warn, error (got %q)", KeyLogLevel, c.LogLevel))
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("%s must be json or text (got %q)", KeyLogFormat, c.LogFormat))
	}
	if c.HTTPAddr == "" {
		problems = append(problems, KeyHTTPAddr+" is required")
	}
	if c.rawSeed != "" {
		if _, err := strconv.ParseBool(c.rawSeed); err != nil {
			problems = append(problems, fmt.Sprintf("%s must be a boolean (got %q)", KeySeed, c.rawSeed))
		}
	}
	if c.User == "" {
		problems = append(problems, KeyUser+" is required")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Value returns the resolved value for key as a string.
func (c *Config) Value(key string) string {
	switch key {
	case KeyLogLevel:
		return c.LogLevel
	case KeyLogFormat:
		return c.LogFormat
	case KeyHTTPAddr:
		return c.HTTPAddr
	case KeySeed:
		return strconv.FormatBool(c.Seed)
	case KeySeedFile:
		return c.SeedFile
	case KeyUser:
		return c.User
	}
	return ""
}

// IsKnownKey reports whether key is a recognized configuration key.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// GetConfigPath returns the full path to the .env file in the given directory.
func GetConfigPath(dir string) string {
	return filepath.Join(dir, ".env")
}

// Set updates or creates a configuration value in the .env file.
func Set(dir, key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown configuration key '%s' (known: %s)", key, strings.Join(Keys, ", "))
	}
	envPath := GetConfigPath(dir)

	envMap, err := godotenv.Read(envPath)
	if err != nil {
		envMap = make(map[string]string)
	}
	envMap[key] = value

	return godotenv.Write(envMap, envPath)
}

// Get retrieves a configuration value from the .env file.
func Get(dir, key string) (string, error) {
	envMap, err := godotenv.Read(GetConfigPath(dir))
	if err != nil {
		return "", fmt.Errorf("failed to read config: %w", err)
	}

	value, ok := envMap[key]
	if !ok {
		return "", fmt.Errorf("key '%s' not found in configuration", key)
	}
	return value, nil
}

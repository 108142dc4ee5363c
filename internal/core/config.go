package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julien-sobczak/emotion-dashboard/pkg/resync"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"
)

// Name of the configuration file inside the home directory
const ConfigFileName = "config.toml"

// Supported values for display.clock
const (
	Clock12h = "12h"
	Clock24h = "24h"
)

// Default config.toml content
const DefaultConfig = `
[display]
clock = "12h"
altscreen = true

[navigation]
home = true
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Display    ConfigDisplay
	Navigation ConfigNavigation
}
type ConfigDisplay struct {
	// "12h" (ex: 02:05 PM) or "24h" (ex: 14:05)
	Clock string
	// Use the full terminal window
	AltScreen bool
}
type ConfigNavigation struct {
	// Open the home menu before the dashboard
	Home bool
}

/* Main config */

type Config struct {
	// Directory containing config.toml. The file is optional.
	HomeDirectory string

	// config.toml content (merged with the defaults)
	ConfigFile ConfigFile
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
	})
	return configSingleton
}

// ResetConfig forces the configuration to be read again. Used by tests.
func ResetConfig() {
	configSingleton = nil
	configOnce.Reset()
}

// Check validates the configuration values.
func (c *Config) Check() error {
	supported := []string{Clock12h, Clock24h}
	if !slices.Contains(supported, c.ConfigFile.Display.Clock) {
		return fmt.Errorf("invalid display.clock %q in %s (supported: %s)",
			c.ConfigFile.Display.Clock,
			filepath.Join(c.HomeDirectory, ConfigFileName),
			strings.Join(supported, ", "))
	}
	return nil
}

// Uses24hClock returns true when times must be displayed using a 24-hour clock.
func (c *Config) Uses24hClock() bool {
	return c.ConfigFile.Display.Clock == Clock24h
}

func currentHome() string {
	// Supports overriding the home directory mainly for testing purposes. Ex:
	//
	//   $ env EMOTION_DASHBOARD_HOME=./examples go run ./cmd/emotion-dashboard
	if path, ok := os.LookupEnv("EMOTION_DASHBOARD_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $EMOTION_DASHBOARD_HOME")
			os.Exit(1)
		}
		return abspath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine home directory: %v\n", err)
		os.Exit(1)
	}
	return filepath.Join(home, ".emotion-dashboard")
}

// ReadConfigFromDirectory loads the file config.toml present in the given directory.
// Defaults are used for the missing file or for missing keys.
func ReadConfigFromDirectory(path string) (*Config, error) {
	configFile, err := parseConfigFile(DefaultConfig)
	if err != nil {
		return nil, fmt.Errorf("default configuration is broken: %v", err)
	}

	configPath := filepath.Join(path, ConfigFileName)
	content, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		// Nothing to override
	} else if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", configPath, err)
	} else {
		// Unmarshal on top of the defaults to keep unspecified values
		if err := toml.Unmarshal(content, configFile); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %v", configPath, err)
		}
	}

	return &Config{
		HomeDirectory: path,
		ConfigFile:    *configFile,
	}, nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	var result ConfigFile
	if err := toml.Unmarshal([]byte(content), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

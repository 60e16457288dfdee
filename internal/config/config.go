// Package config holds the file-based configuration shared by the barista
// binaries. Settings load from a YAML file with environment overrides on
// top; a missing file just means defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables understood by the barista binaries. The store file
// variables are read by the path locator, not here, so that the env >
// config > conventional precedence lives in one place.
const (
	EnvConfigPath   = "BARISTA_CONFIG"
	EnvAPIAddr      = "BARISTA_API_ADDR"
	EnvAPIURL       = "BARISTA_API_URL"
	EnvOrdersFile   = "BARISTA_ORDERS_FILE"
	EnvWellnessFile = "BARISTA_WELLNESS_FILE"
)

// Config holds all barista configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Display DisplayConfig `yaml:"display"`
	Stores  StoresConfig  `yaml:"stores"`
}

// APIConfig configures the HTTP server.
type APIConfig struct {
	Addr string `yaml:"addr"`
}

// DisplayConfig configures the order display client.
type DisplayConfig struct {
	APIURL string `yaml:"api_url"`
}

// StoresConfig names the JSON array stores.
type StoresConfig struct {
	Orders   StoreConfig `yaml:"orders"`
	Wellness StoreConfig `yaml:"wellness"`
}

// StoreConfig points one store at its primary file plus optional extra
// read candidates probed after it.
type StoreConfig struct {
	Path       string   `yaml:"path"`
	Candidates []string `yaml:"candidates"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		API:     APIConfig{Addr: ":8080"},
		Display: DisplayConfig{APIURL: "http://localhost:8080"},
		Stores: StoresConfig{
			Orders:   StoreConfig{Path: filepath.Join("backend", "orders.json")},
			Wellness: StoreConfig{Path: filepath.Join("backend", "wellness.json")},
		},
	}
}

// DefaultPath returns the config file location: $BARISTA_CONFIG when set,
// otherwise barista.yaml in the working directory.
func DefaultPath() string {
	if v := os.Getenv(EnvConfigPath); v != "" {
		return v
	}
	return "barista.yaml"
}

// Load reads configuration from a YAML file, layering it over defaults and
// applying environment overrides. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvAPIAddr); v != "" {
		c.API.Addr = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.Display.APIURL = v
	}
}

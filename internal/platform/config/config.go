package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName names the application's directory under the XDG config home.
const AppName = "header-insight"

var (
	errInvalidPort           = errors.New("config: invalid PORT number")
	errConcurrencyOutOfRange = errors.New("config: SCAN_CONCURRENCY must be 1-100")
	errInvalidEndpoint       = errors.New("config: GROQ_ENDPOINT must be an absolute http(s) URL")
)

// Config holds all application configuration. Values come from an optional
// YAML file and are overridden by environment variables.
type Config struct {
	Port            string `yaml:"port"`
	LogLevel        string `yaml:"log_level"`
	ScanConcurrency int    `yaml:"scan_concurrency"`

	// GroqAPIKey may be empty; summaries are then replaced by an advisory.
	GroqAPIKey   string `yaml:"groq_api_key"`
	GroqEndpoint string `yaml:"groq_endpoint"`
}

func defaults() Config {
	return Config{
		Port:            "8080",
		LogLevel:        "ERROR",
		ScanConcurrency: 4,
	}
}

// Load reads configuration from the file named by CONFIG_FILE (or the XDG
// config file, if one exists) and then from environment variables.
func Load() (Config, error) {
	return LoadFile(os.Getenv("CONFIG_FILE"))
}

// LoadFile is Load with an explicit config file path. An empty path falls
// back to $XDG_CONFIG_HOME/header-insight/config.yaml when it exists. An
// explicit path that does not exist is an error.
func LoadFile(path string) (Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	cfg.applyEnv()
	return cfg, cfg.validate()
}

// DefaultConfigPath is where LoadFile looks when no path is given.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

func findConfigFile() string {
	path, err := xdg.SearchConfigFile(filepath.Join(AppName, "config.yaml"))
	if err != nil {
		return ""
	}
	return path
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // operator-provided config path
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.ScanConcurrency = getEnvAsInt("SCAN_CONCURRENCY", c.ScanConcurrency)
	c.GroqAPIKey = getEnv("GROQ_API_KEY", c.GroqAPIKey)
	c.GroqEndpoint = getEnv("GROQ_ENDPOINT", c.GroqEndpoint)
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	if c.ScanConcurrency < 1 || c.ScanConcurrency > 100 {
		return fmt.Errorf("%w: got %d", errConcurrencyOutOfRange, c.ScanConcurrency)
	}

	if c.GroqEndpoint != "" {
		u, err := url.Parse(c.GroqEndpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q", errInvalidEndpoint, c.GroqEndpoint)
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

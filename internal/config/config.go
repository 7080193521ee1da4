package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultURL is the admin endpoint of a Dgraph instance running locally
// with default ports.
const DefaultURL = "localhost:8080"

// Config represents the application configuration
type Config struct {
	URL            string `yaml:"url"`
	Auth           string `yaml:"auth"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Output         string `yaml:"output"`

	// Derived by Finalize; never read from file or environment.
	BaseURL   string `yaml:"-"`
	AuthName  string `yaml:"-"`
	AuthValue string `yaml:"-"`
	RequestID string `yaml:"-"`
}

// Load loads configuration from multiple sources with precedence:
// 1. Environment variables
// 2. ./.env.local (dotenv) - walks up parent directories to find it
// 3. ~/.config/dgadm/config.yaml (YAML)
func Load() (*Config, error) {
	cfg := &Config{
		URL:            DefaultURL,
		TimeoutSeconds: 30,
		Output:         "text",
	}

	// Load .env.local if it exists (walking up parent directories)
	if envPath := findEnvLocal(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	// Load ~/.config/dgadm/config.yaml if it exists
	if err := loadYAMLConfig(cfg); err != nil {
		// YAML config is optional, so we don't fail if it doesn't exist
	}

	// Override with environment variables
	if u := os.Getenv("DGADM_URL"); u != "" {
		cfg.URL = u
	}
	if auth := getEnvOrFile("DGADM_AUTH", "DGADM_AUTH_FILE"); auth != "" {
		cfg.Auth = auth
	}
	if timeout := os.Getenv("DGADM_TIMEOUT"); timeout != "" {
		secs, err := strconv.Atoi(timeout)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid DGADM_TIMEOUT %q: expected positive integer seconds", timeout)
		}
		cfg.TimeoutSeconds = secs
	}
	if output := os.Getenv("DGADM_OUTPUT"); output != "" {
		cfg.Output = output
	}

	// One id per invocation; every request of this run carries it.
	cfg.RequestID = uuid.NewString()

	return cfg, nil
}

// Finalize normalizes the base URL and splits the auth header. It must be
// called once, after all flag overrides are applied and before the config
// is handed to the resolver.
func (c *Config) Finalize() error {
	base, err := NormalizeURL(c.URL)
	if err != nil {
		return err
	}
	c.BaseURL = base

	if c.Auth != "" {
		name, value, err := ParseAuth(c.Auth)
		if err != nil {
			return err
		}
		c.AuthName = name
		c.AuthValue = value
	}

	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// NormalizeURL turns a user-supplied URL into a clean absolute base URL.
// A missing scheme defaults to http (so "localhost:8080" works), and any
// path, query, or fragment is trimmed off: requests always target the
// admin endpoints relative to the host root, so "https://x.cloud/graphql"
// becomes "https://x.cloud".
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("url is empty")
	}

	u, err := url.Parse(raw)
	// "localhost:8080" parses with scheme "localhost", so anything that is
	// not http(s) gets the default scheme prepended and reparsed.
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		u, err = url.Parse("http://" + raw)
		if err != nil {
			return "", fmt.Errorf("invalid url %q: %w", raw, err)
		}
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid url %q: no host", raw)
	}

	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/"), nil
}

// ParseAuth splits a "Name:Value" auth string on the first colon.
// The value is kept verbatim, colons and all, so API keys that contain
// ':' survive intact.
func ParseAuth(raw string) (name, value string, err error) {
	name, value, ok := strings.Cut(raw, ":")
	if !ok {
		return "", "", fmt.Errorf("invalid auth %q: expected Name:Value", raw)
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid auth %q: header name is empty", raw)
	}
	return name, value, nil
}

// loadYAMLConfig loads configuration from ~/.config/dgadm/config.yaml
func loadYAMLConfig(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(homeDir, ".config", "dgadm", "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// getEnvOrFile gets an environment variable value, or reads it from a file
// if the _FILE variant is set
func getEnvOrFile(envVar, fileVar string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}

	if filePath := os.Getenv(fileVar); filePath != "" {
		data, err := os.ReadFile(filePath)
		if err == nil {
			return strings.TrimSpace(string(data))
		}
	}

	return ""
}

// findEnvLocal searches for .env.local starting from cwd and walking up
// parent directories. Stops at the user's home directory.
// Returns the path to .env.local if found, empty string otherwise.
func findEnvLocal() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// If we can't get home dir, just check cwd
		if _, err := os.Stat(".env.local"); err == nil {
			return ".env.local"
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Clean paths for reliable comparison
	homeDir = filepath.Clean(homeDir)
	dir := filepath.Clean(cwd)

	for {
		envPath := filepath.Join(dir, ".env.local")
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}

		// Stop if we've reached home directory
		if dir == homeDir {
			break
		}

		// Get parent directory
		parent := filepath.Dir(dir)

		// Stop if we've reached the filesystem root
		if parent == dir {
			break
		}

		dir = parent
	}

	return ""
}

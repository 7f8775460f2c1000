package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// AgentConfig controls discovery-agent requests.
type AgentConfig struct {
	InputType  string `yaml:"input_type"`
	MaxResults int    `yaml:"max_results"`
}

type Config struct {
	ServerURL   string       `yaml:"server_url"`
	Timeout     string       `yaml:"timeout"`
	DealCount   int          `yaml:"deal_count"`
	DefaultView string       `yaml:"default_view"`
	Retention   string       `yaml:"retention"`
	Agent       *AgentConfig `yaml:"agent,omitempty"`
}

// Server returns the backend base URL, preferring the READRABBIT_SERVER
// environment variable over the config file.
func (c *Config) Server() string {
	if s := os.Getenv("READRABBIT_SERVER"); s != "" {
		return s
	}
	return c.ServerURL
}

func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

func (c *Config) RetentionDuration() time.Duration {
	if c.Retention == "" {
		return 90 * 24 * time.Hour
	}
	// Support "Nd" day syntax
	if len(c.Retention) > 1 && c.Retention[len(c.Retention)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(c.Retention, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	d, err := time.ParseDuration(c.Retention)
	if err != nil {
		return 90 * 24 * time.Hour
	}
	return d
}

// GetDealCount returns how many articles to request per deal, defaulting to 4.
func (c *Config) GetDealCount() int {
	if c.DealCount <= 0 {
		return 4
	}
	return c.DealCount
}

// GetDefaultView returns the starting view, defaulting to deck.
func (c *Config) GetDefaultView() string {
	if c.DefaultView == "" {
		return "deck"
	}
	return c.DefaultView
}

// AgentInputType returns the default agent input type.
func (c *Config) AgentInputType() string {
	if c.Agent == nil || c.Agent.InputType == "" {
		return "article"
	}
	return c.Agent.InputType
}

// AgentMaxResults returns how many recommendations to request, defaulting to 5.
func (c *Config) AgentMaxResults() int {
	if c.Agent == nil || c.Agent.MaxResults <= 0 {
		return 5
	}
	return c.Agent.MaxResults
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "readrabbit", "config.yaml")
}

func HistoryPath() string {
	return filepath.Join(xdg.CacheHome, "readrabbit", "readrabbit.db")
}

func SavedPath() string {
	return filepath.Join(xdg.DataHome, "readrabbit", "saved.json")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.ServerURL != "" {
		u, err := url.Parse(cfg.ServerURL)
		if err != nil {
			return fmt.Errorf("invalid server_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("server_url scheme must be http or https, got %q", u.Scheme)
		}
	}

	validViews := map[string]bool{"": true, "deck": true, "list": true}
	if !validViews[cfg.DefaultView] {
		return fmt.Errorf("unknown default_view %q (valid: deck, list)", cfg.DefaultView)
	}

	if cfg.Agent != nil {
		validInputs := map[string]bool{"": true, "article": true, "podcast": true, "tweet": true, "text": true}
		if !validInputs[cfg.Agent.InputType] {
			return fmt.Errorf("unknown agent input_type %q (valid: article, podcast, tweet, text)", cfg.Agent.InputType)
		}
	}

	return nil
}

// Package config loads server settings from defaults, an optional YAML file
// and the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Zachkp/portfolio/internal/page"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_ADDR.
const EnvPrefix = "PORTFOLIO_"

// Config is the portfolio server configuration.
type Config struct {
	Addr                string        `yaml:"addr" koanf:"addr"`
	Mode                string        `yaml:"mode" koanf:"mode"`
	DatabasePath        string        `yaml:"database_path" koanf:"database_path"`
	ContentFile         string        `yaml:"content_file" koanf:"content_file"`
	AssetsDir           string        `yaml:"assets_dir" koanf:"assets_dir"`
	StorageKey          string        `yaml:"storage_key" koanf:"storage_key"`
	TaglineInterval     time.Duration `yaml:"tagline_interval" koanf:"tagline_interval"`
	NoticeDuration      time.Duration `yaml:"notice_duration" koanf:"notice_duration"`
	ScrollThreshold     float64       `yaml:"scroll_threshold" koanf:"scroll_threshold"`
	VisibilityThreshold float64       `yaml:"visibility_threshold" koanf:"visibility_threshold"`
	AllowOrigins        []string      `yaml:"allow_origins" koanf:"allow_origins"`
	AdminUsername       string        `yaml:"admin_username" koanf:"admin_username"`
	AdminPassword       string        `yaml:"admin_password" koanf:"admin_password"`
	VisitorRetention    time.Duration `yaml:"visitor_retention" koanf:"visitor_retention"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		Addr:                ":8080",
		Mode:                "release",
		DatabasePath:        "data/portfolio.db",
		AssetsDir:           "./assets",
		StorageKey:          page.DefaultStorageKey,
		TaglineInterval:     page.DefaultTaglineInterval,
		NoticeDuration:      page.DefaultNoticeDuration,
		ScrollThreshold:     page.DefaultScrollThreshold,
		VisibilityThreshold: page.DefaultVisibilityThreshold,
		AllowOrigins:        []string{"http://localhost:8080"},
		VisitorRetention:    365 * 24 * time.Hour,
	}
}

// Load reads configuration from the given YAML file, then overlays
// PORTFOLIO_* environment variables and finally PORT.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Hosting platforms hand out the listen port this way.
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	return cfg, nil
}

var validModes = map[string]bool{"debug": true, "release": true, "test": true}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.StorageKey == "" {
		return fmt.Errorf("storage_key is required")
	}
	if c.TaglineInterval <= 0 {
		return fmt.Errorf("tagline_interval must be positive")
	}
	if c.NoticeDuration <= 0 {
		return fmt.Errorf("notice_duration must be positive")
	}
	if c.ScrollThreshold <= 0 {
		return fmt.Errorf("scroll_threshold must be positive")
	}
	if c.VisibilityThreshold <= 0 || c.VisibilityThreshold > 1 {
		return fmt.Errorf("visibility_threshold must be in (0, 1]")
	}
	if c.VisitorRetention <= 0 {
		return fmt.Errorf("visitor_retention must be positive")
	}
	for _, o := range c.AllowOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("allow_origins: %q must start with http:// or https://", o)
		}
	}
	return nil
}

// PageConfig returns the page settings this configuration controls.
func (c *Config) PageConfig() page.Config {
	return page.Config{
		StorageKey:      c.StorageKey,
		TaglineInterval: c.TaglineInterval,
		NoticeDuration:  c.NoticeDuration,
		ScrollThreshold: c.ScrollThreshold,
	}
}

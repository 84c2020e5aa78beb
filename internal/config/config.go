// Package config loads the site configuration from the environment. A .env
// file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Akshat0071/portfolio/internal/content"
)

// Config is the runtime configuration. Every value has a literal fallback.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	SiteURL        string        `env:"SITE_URL" envDefault:"https://akshatbansal.dev"`
	MeasurementID  string        `env:"GA_MEASUREMENT_ID"`
	AppTitle       string        `env:"APP_TITLE"`
	AppDescription string        `env:"APP_DESCRIPTION"`
	DatabasePath   string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	LazySections   bool          `env:"LAZY_SECTIONS" envDefault:"true"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SubmitDelay    time.Duration `env:"CONTACT_SUBMIT_DELAY" envDefault:"1500ms"`
	Retention      time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	Debug          bool          `env:"DEBUG"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.SiteURL = strings.TrimRight(c.SiteURL, "/")
	if c.AppTitle == "" {
		c.AppTitle = content.Name + " | " + content.Tagline
	}
	if c.AppDescription == "" {
		c.AppDescription = content.SiteDescription
	}
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if !strings.HasPrefix(c.SiteURL, "http://") && !strings.HasPrefix(c.SiteURL, "https://") {
		return fmt.Errorf("site url %q must be absolute", c.SiteURL)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	if c.Retention <= 0 {
		return fmt.Errorf("visitor retention must be positive")
	}
	if c.SubmitDelay < 0 {
		return fmt.Errorf("contact submit delay must not be negative")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

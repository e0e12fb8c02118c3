package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mgarciagodoy/portfolio/web/src/templates/components"
)

// DevSessionSecret is only accepted when APP_ENV is "development".
const DevSessionSecret = "dev-only-session-secret-change-me"

// Config holds all configuration for the application.
type Config struct {
	Env           string  `env:"APP_ENV" envDefault:"development"`
	Addr          string  `env:"APP_ADDR" envDefault:":8080"`
	LogFormat     string  `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel      string  `env:"LOG_LEVEL" envDefault:"debug"`
	ContentFile   string  `env:"CONTENT_FILE"`
	ContentWatch  bool    `env:"CONTENT_WATCH" envDefault:"false"`
	DefaultTheme  string  `env:"DEFAULT_THEME" envDefault:"light"`
	SessionSecret string  `env:"SESSION_SECRET" envDefault:"dev-only-session-secret-change-me"`
	StaticDir     string  `env:"STATIC_DIR"`
	RateLimit     float64 `env:"RATE_LIMIT" envDefault:"20"`
}

// New loads configuration from a .env file, if present, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// We don't have slog configured yet, so we use the standard logger here.
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads configuration from the environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, ok := components.ParseTheme(c.DefaultTheme); !ok {
		return fmt.Errorf("DEFAULT_THEME must be light or dark, got %q", c.DefaultTheme)
	}
	if c.SessionSecret == DevSessionSecret && !c.IsDevelopment() {
		return errors.New("SESSION_SECRET must be set outside development")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive, got %v", c.RateLimit)
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Theme returns the configured default theme.
func (c *Config) Theme() components.Theme {
	t, _ := components.ParseTheme(c.DefaultTheme)
	return t
}

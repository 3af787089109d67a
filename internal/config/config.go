// Package config reads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int           `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string        `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Environment string        `env:"ENVIRONMENT" envDefault:"dev" validate:"required"`
	Version     string        `env:"VERSION" envDefault:"dev"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"2h" validate:"gt=0"`
	MaxSessions int           `env:"MAX_SESSIONS" envDefault:"500" validate:"min=1"`
	ImagesDir   string        `env:"IMAGES_DIR" envDefault:"images"`
	ContentFile string        `env:"CONTENT_FILE"`
	PublicURL   string        `env:"PUBLIC_URL" validate:"omitempty,url"`
}

// ServiceName is reported in every log line
const ServiceName = "explorers-mission"

// Load reads an optional .env file, then the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// URL returns the address players should open, falling back to localhost
func (c *Config) URL() string {
	if c.PublicURL != "" {
		return c.PublicURL
	}
	return fmt.Sprintf("http://localhost:%d/", c.Port)
}

// IsDev reports whether the service runs in a development environment
func (c *Config) IsDev() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

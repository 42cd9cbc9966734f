package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	CatalogFromFile     = "file"
	CatalogFromDatabase = "database"
)

type Config struct {
	ServerPort    string `env:"SERVER_PORT" envDefault:"8080"`
	SessionSecret string `env:"SESSION_SECRET"`
	DBDSN         string `env:"DB_DSN"`

	// CatalogSource выбирает, откуда грузить каталог: file или database
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"file"`
	CatalogFile   string `env:"CATALOG_FILE"`
	SiteFile      string `env:"SITE_FILE"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin@dubailuxe.local"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	GinMode string `env:"GIN_MODE" envDefault:"debug"`
}

// DatabaseEnabled reports whether a postgres DSN was configured.
func (c *Config) DatabaseEnabled() bool {
	return c.DBDSN != ""
}

// Load reads .env (if present) and the process environment and validates
// the result for running the web server.
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse is Load without validation, for tools that only need part of the
// configuration.
func Parse() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is not set")
	}
	if len(c.SessionSecret) < 32 {
		return errors.New("SESSION_SECRET must be at least 32 bytes")
	}

	switch c.CatalogSource {
	case CatalogFromFile:
	case CatalogFromDatabase:
		if !c.DatabaseEnabled() {
			return errors.New("CATALOG_SOURCE=database requires DB_DSN")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// カタログの読み込み元
const (
	CatalogEmbedded = "embedded"
	CatalogPostgres = "postgres"
)

type Config struct {
	// Server
	ServerPort      string        `env:"PORT" envDefault:"4000"`
	Debug           bool          `env:"DEBUG" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Site
	SiteURL string `env:"SITE_URL" envDefault:"https://aska-auto-station-web.vercel.app"`

	// Catalog
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"embedded"`
	DatabaseURL   string `env:"DATABASE_URL"`

	// API レート制限（秒間リクエスト数）
	APIRateLimit float64 `env:"API_RATE_LIMIT" envDefault:"20"`
	APIRateBurst int     `env:"API_RATE_BURST" envDefault:"40"`
}

func Load() (*Config, error) {
	// .env ファイルがあれば読み込む（任意）
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	cfg.CatalogSource = strings.ToLower(cfg.CatalogSource)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 設定値の整合性チェック
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case CatalogEmbedded:
	case CatalogPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when CATALOG_SOURCE=%s", CatalogPostgres)
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	if c.SiteURL == "" {
		return fmt.Errorf("SITE_URL must not be empty")
	}
	if c.APIRateLimit <= 0 || c.APIRateBurst <= 0 {
		return fmt.Errorf("API_RATE_LIMIT and API_RATE_BURST must be positive")
	}
	return nil
}

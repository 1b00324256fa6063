package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Stand"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host            string        `envconfig:"DB_HOST" default:"localhost"`
		Port            int           `envconfig:"DB_PORT" default:"5432"`
		User            string        `envconfig:"DB_USER" default:"postgres"`
		Password        string        `envconfig:"DB_PASSWORD" default:""`
		Name            string        `envconfig:"DB_NAME" default:"stand"`
		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Redis struct {
		Addr      string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
		ReportTTL time.Duration `envconfig:"REPORT_CACHE_TTL" default:"60s"`
	}

	PDF struct {
		BaseURL string `envconfig:"PDF_RENDERER_URL" default:"http://localhost:9000"`
	}

	Seller struct {
		Name    string `envconfig:"SELLER_NAME" default:"Stand Automóvel, Lda."`
		NIF     string `envconfig:"SELLER_NIF"`
		Address string `envconfig:"SELLER_ADDRESS"`
		IBAN    string `envconfig:"SELLER_IBAN"`
	}

	Storage struct {
		BaseURL string `envconfig:"STORAGE_URL" default:"http://localhost:9001"`
		Token   string `envconfig:"STORAGE_TOKEN"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

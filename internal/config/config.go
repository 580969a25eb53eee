// Package config loads the service configuration from an optional YAML
// file with environment variable overrides. The Brapi access token lives
// here and is injected into the quote client at startup; nothing reads it
// from the environment mid-operation.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration
type Config struct {
	HTTPAddr string   `yaml:"http_addr"`
	Database Database `yaml:"database"`
	Brapi    Brapi    `yaml:"brapi"`
}

// Database holds the postgres connection settings
type Database struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// Brapi holds the quote provider settings
type Brapi struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

// ConnString builds the lib/pq connection string
func (d Database) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load reads the configuration. path may be empty, in which case only
// defaults and environment variables apply. Environment variables always
// win over the file so containerized deployments can override per-env
// settings without editing it.
func Load(path string) (*Config, error) {
	cfg := &Config{
		HTTPAddr: ":8080",
		Database: Database{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Name:     "stockfolio",
			SSLMode:  "disable",
		},
		Brapi: Brapi{
			Timeout: 10 * time.Second,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	overrideString(&cfg.HTTPAddr, "HTTP_ADDR")
	overrideString(&cfg.Database.Host, "DB_HOST")
	overrideString(&cfg.Database.Port, "DB_PORT")
	overrideString(&cfg.Database.User, "DB_USER")
	overrideString(&cfg.Database.Password, "DB_PASSWORD")
	overrideString(&cfg.Database.Name, "DB_NAME")
	overrideString(&cfg.Database.SSLMode, "DB_SSLMODE")
	overrideString(&cfg.Brapi.BaseURL, "BRAPI_BASE_URL")
	overrideString(&cfg.Brapi.Token, "BRAPI_TOKEN")

	if v := os.Getenv("BRAPI_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BRAPI_TIMEOUT %q: %w", v, err)
		}
		cfg.Brapi.Timeout = timeout
	}

	if cfg.Brapi.Token == "" {
		return nil, fmt.Errorf("brapi token is required (set brapi.token or BRAPI_TOKEN)")
	}

	return cfg, nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"hotel-booking-api/utils"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig holds the HTTP side of the service.
type ServerConfig struct {
	Port            string   `yaml:"port"`
	CorsOrigins     []string `yaml:"cors_origins"`
	DefaultActor    string   `yaml:"default_actor"`
	RateLimitPerSec float64  `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int      `yaml:"rate_limit_burst"`
}

// DatabaseConfig holds the MySQL connection settings. URL wins over the
// discrete fields when set.
type DatabaseConfig struct {
	URL                    string `yaml:"url"`
	User                   string `yaml:"user"`
	Password               string `yaml:"password"`
	Host                   string `yaml:"host"`
	Port                   string `yaml:"port"`
	Name                   string `yaml:"name"`
	LogLevel               string `yaml:"log_level"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:         "8080",
			CorsOrigins:  []string{"*"},
			DefaultActor: "System",
		},
		Database: DatabaseConfig{
			User:                   "root",
			Host:                   "127.0.0.1",
			Port:                   "3306",
			Name:                   "hotel_db",
			LogLevel:               "warn",
			MaxOpenConns:           25,
			MaxIdleConns:           10,
			ConnMaxLifetimeMinutes: 5,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path and finally the environment (a .env file is loaded first when present).
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️  couldn't load .env: %v", err)
	}

	cfg := defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.Server.RateLimitPerSec > 0 && cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = int(cfg.Server.RateLimitPerSec) + 1
	}
	if len(cfg.Server.CorsOrigins) == 0 {
		cfg.Server.CorsOrigins = []string{"*"}
	}
	if strings.TrimSpace(cfg.Server.DefaultActor) == "" {
		return nil, errors.New("default actor must not be blank")
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	s, d := &cfg.Server, &cfg.Database

	s.Port = utils.EnvOrDefault("PORT", s.Port)
	s.DefaultActor = utils.EnvOrDefault("DEFAULT_ACTOR", s.DefaultActor)
	s.RateLimitPerSec = utils.EnvFloat("RATE_LIMIT_PER_SEC", s.RateLimitPerSec)
	if origins := utils.SplitCSV(os.Getenv("CORS_ORIGINS")); len(origins) > 0 {
		s.CorsOrigins = origins
	}

	d.URL = utils.EnvOrDefault("MYSQL_URL", utils.EnvOrDefault("DATABASE_URL", d.URL))
	d.User = utils.EnvOrDefault("DB_USER", d.User)
	d.Password = utils.EnvOrDefault("DB_PASS", d.Password)
	d.Host = utils.EnvOrDefault("DB_HOST", d.Host)
	d.Port = utils.EnvOrDefault("DB_PORT", d.Port)
	d.Name = utils.EnvOrDefault("DB_NAME", d.Name)
	d.LogLevel = utils.EnvOrDefault("DB_LOG_LEVEL", d.LogLevel)
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return ":" + strings.TrimPrefix(s.Port, ":")
}

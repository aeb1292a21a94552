package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
}

type DatabaseConfig struct {
	// URL wins when set; otherwise a Postgres DSN is built from the discrete
	// DB_* variables, and with no DB_HOST at all the store falls back to a
	// local SQLite file.
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	File     string
}

func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	if d.Host != "" {
		return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
	}
	return d.File
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "afiliados"),
			Password: getEnv("DB_PASSWORD", "afiliados"),
			Name:     getEnv("DB_NAME", "afiliados"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			File:     getEnv("DB_FILE", "afiliados.db"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string `yaml:"LISTEN_ADDR"`
	GinMode    string `yaml:"GIN_MODE"`

	DBDriver   string `yaml:"DB_DRIVER"`
	DBHost     string `yaml:"DB_HOST"`
	DBPort     string `yaml:"DB_PORT"`
	DBUser     string `yaml:"DB_USER"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBName     string `yaml:"DB_NAME"`

	RedisHost     string `yaml:"REDIS_HOST"`
	RedisPort     string `yaml:"REDIS_PORT"`
	SessionSecret string `yaml:"SESSION_SECRET"`

	// Empty endpoint selects the in-memory object store (development).
	StorageEndpoint  string `yaml:"STORAGE_ENDPOINT"`
	StorageAccessKey string `yaml:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string `yaml:"STORAGE_SECRET_KEY"`
	StorageUseSSL    bool   `yaml:"STORAGE_USE_SSL"`

	ResetTokenSecret string `yaml:"RESET_TOKEN_SECRET"`
	// Base URL of the public site, used to build reset-password links.
	SiteBaseURL string `yaml:"SITE_BASE_URL"`

	// Empty host selects the log-only mailer (development).
	SMTPHost string `yaml:"SMTP_HOST"`
	SMTPPort string `yaml:"SMTP_PORT"`
	SMTPFrom string `yaml:"SMTP_FROM"`
}

// Load builds the configuration from environment variables, then applies an
// optional YAML overlay named by CONFIG_FILE.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		DBDriver:         getEnv("DB_DRIVER", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "wdpl"),
		DBPassword:       getEnv("DB_PASSWORD", "wdpl"),
		DBName:           getEnv("DB_NAME", "corporate_site"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		SessionSecret:    getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "") == "true",
		ResetTokenSecret: getEnv("RESET_TOKEN_SECRET", "default-reset-secret-change-me"),
		SiteBaseURL:      getEnv("SITE_BASE_URL", "http://localhost:8080"),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPFrom:         getEnv("SMTP_FROM", "noreply@wdpl.in"),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

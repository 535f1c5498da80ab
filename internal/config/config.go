package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production

	DBPath string `env:"DB_PATH" envDefault:"data/wellnest.db"`

	SecretKey string `env:"SECRET_KEY" envDefault:"change_me_in_production"`

	// ReferenceTimezone anchors every "today" computation for both the
	// cycle and streak engines, regardless of request origin.
	ReferenceTimezone string `env:"REFERENCE_TZ" envDefault:"Asia/Kolkata"`

	LoggerLevel  string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

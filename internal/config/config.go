package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains application configuration parameters.
type Config struct {
	LogLevel int     `env:"LOG_LEVEL" envDefault:"0"`
	Store    Store   `envPrefix:"STORE_"`
	Session  Session `envPrefix:"SESSION_"`
	Gemini   Gemini  `envPrefix:"GEMINI_"`
	Market   Market  `envPrefix:"MARKET_"`
}

// Store contains local store parameters.
type Store struct {
	Path string `env:"PATH" envDefault:"agrocycle.db"`
}

// Session contains session token parameters.
type Session struct {
	Secret string `env:"SECRET" envDefault:"devsecret"`
}

// Gemini contains assistant service parameters. APIKey must come from
// the environment; it is never embedded in source.
type Gemini struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-3-flash-preview"`
}

// Market contains marketplace parameters.
type Market struct {
	LogisticsFee float64 `env:"LOGISTICS_FEE" envDefault:"4000"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Log         Log
	Postgres    Postgres
	Redis       Redis
	FMCSA       FMCSA
	Cache       Cache
	Negotiation Negotiation
	Server      Server
	Bot         Bot
}

// Load reads the environment, optionally seeded from a .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}

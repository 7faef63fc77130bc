package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	HTTPAddr       string
	JWTSecret      string
	AMQPURL        string
	OmisePublicKey string
	OmiseSecretKey string
}

// Load reads configuration from the environment, with an optional .env file
// for local development. DATABASE_URL and JWT_SECRET are required; the
// gateway and broker settings are optional because tests and local runs can
// operate without them.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		HTTPAddr:       envOrDefault("HTTP_ADDR", ":8080"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AMQPURL:        os.Getenv("AMQP_URL"),
		OmisePublicKey: os.Getenv("OMISE_PUBLIC_KEY"),
		OmiseSecretKey: os.Getenv("OMISE_SECRET_KEY"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultStoreFile = "bookpesa.json"

// Config holds the environment configuration of the application.
type Config struct {
	// File is the path of the data file holding the whole store snapshot.
	File string `env:"BOOKPESA_FILE" envDefault:"bookpesa.json"`
}

// loadConfig reads configuration from the environment, after loading an
// optional .env file from the working directory.
func loadConfig() (Config, error) {
	// A missing .env file is not an error, only a malformed one would be,
	// and even then the environment still decides.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

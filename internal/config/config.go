// Package config loads settings from the environment, with a local .env
// file taking effect first when present.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Game configures the arena server.
type Game struct {
	Port          string `env:"PORT" envDefault:"8081"`
	LedgerAPIBase string `env:"LEDGER_API_BASE" envDefault:"http://localhost:8080"`
}

// Ledger configures the score ledger service.
type Ledger struct {
	Port   string `env:"PORT" envDefault:"8080"`
	DBPath string `env:"LEDGER_DB" envDefault:"ledger.db"`
}

// Load fills target from the environment.
func Load(target any) error {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

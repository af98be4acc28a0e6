// Package config supplies runtime defaults for the sizing commands from the
// process environment, with an optional .env file merged in first.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings are the environment-tunable defaults of the sizing engine.
// Command-line flags override them.
type Settings struct {
	MaxIterations     int     `env:"WINGPANEL_MAX_ITERATIONS" envDefault:"10"`
	Tolerance         float64 `env:"WINGPANEL_TOLERANCE" envDefault:"0.02"`
	Method            string  `env:"WINGPANEL_METHOD" envDefault:"winter"`
	BoundaryCondition string  `env:"WINGPANEL_BOUNDARY_CONDITION" envDefault:"hinged"`
	EndCondition      string  `env:"WINGPANEL_END_CONDITION" envDefault:"hinged"`
	LogLevel          string  `env:"WINGPANEL_LOG_LEVEL" envDefault:"info"`
}

// Load reads the settings from the environment. A .env file in the working
// directory is loaded first when present; a missing file is not an error.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &s, nil
}

package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Settings are the simulator's runtime knobs. CLI flags override them.
type Settings struct {
	ConfigDir string `env:"SIM_CONFIG_DIR" envDefault:"assets"`
	Encounter string `env:"SIM_ENCOUNTER" envDefault:"encounter.yaml"`
	Out       string `env:"SIM_OUT" envDefault:"out.json"`
	Seed      uint64 `env:"SIM_SEED" envDefault:"12345"`
	Runs      int    `env:"SIM_RUNS" envDefault:"1"`
	Workers   int    `env:"SIM_WORKERS" envDefault:"8"`
	MaxTurns  int    `env:"SIM_MAX_TURNS" envDefault:"500"`
	Record    bool   `env:"SIM_RECORD" envDefault:"true"`
	LogLevel  string `env:"SIM_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s.LogLevel, err)
	}
	return lvl, nil
}

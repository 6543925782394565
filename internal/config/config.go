// Package config loads game settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. 0 means a seed is taken from the clock.
	Seed int64 `env:"RPS_SEED" envDefault:"0"`

	PlayerName         string  `env:"RPS_PLAYER_NAME" envDefault:"Hero"`
	InventoryCapacity  float64 `env:"RPS_INVENTORY_CAPACITY" envDefault:"100"`
	MaxConsumableTypes int     `env:"RPS_MAX_CONSUMABLE_TYPES" envDefault:"3"`
	EncounterChance    float64 `env:"RPS_ENCOUNTER_CHANCE" envDefault:"0.3"`
	FleeChance         float64 `env:"RPS_FLEE_CHANCE" envDefault:"0.5"`

	// CombatLog is the file combat events are appended to. Empty disables it.
	CombatLog string `env:"RPS_COMBAT_LOG"`

	// Tracing exports spans over OTLP; the exporter itself reads OTEL_*.
	Tracing bool `env:"RPS_TRACING" envDefault:"false"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	if c.PlayerName == "" {
		errs = append(errs, errors.New("RPS_PLAYER_NAME must not be empty"))
	}
	if c.InventoryCapacity < 0 {
		errs = append(errs, fmt.Errorf("RPS_INVENTORY_CAPACITY must be non-negative, got %v", c.InventoryCapacity))
	}
	if c.MaxConsumableTypes < 1 {
		errs = append(errs, fmt.Errorf("RPS_MAX_CONSUMABLE_TYPES must be at least 1, got %d", c.MaxConsumableTypes))
	}
	if c.EncounterChance < 0 || c.EncounterChance > 1 {
		errs = append(errs, fmt.Errorf("RPS_ENCOUNTER_CHANCE must be within [0, 1], got %v", c.EncounterChance))
	}
	if c.FleeChance < 0 || c.FleeChance > 1 {
		errs = append(errs, fmt.Errorf("RPS_FLEE_CHANCE must be within [0, 1], got %v", c.FleeChance))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

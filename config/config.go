// Package config loads tolerances, movement tuning and logging settings from YAML
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elle-trudgett/luna/collision"
	"github.com/elle-trudgett/luna/logging"
	"github.com/elle-trudgett/luna/physics"
)

// Config is the root configuration document
type Config struct {
	Collision collision.Tolerances    `yaml:"collision"`
	Movement  physics.MovementProfile `yaml:"movement"`
	Log       LogConfig               `yaml:"log"`
}

// LogConfig selects logger level, encoding and destination
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	// File receives log output instead of stderr when set; terminal tools need this
	File string `yaml:"file,omitempty"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Collision: collision.DefaultTolerances,
		Movement:  physics.PlayerProfile,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path and parses it over the defaults
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults; absent keys keep their default, unknown keys are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section
func (c Config) Validate() error {
	if err := c.Collision.Validate(); err != nil {
		return fmt.Errorf("config collision: %w", err)
	}
	if err := c.Movement.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config log: %w", err)
	}
	return nil
}

// Resolver builds the collision resolver for these tolerances
func (c Config) Resolver() (collision.Resolver, error) {
	return collision.NewResolver(c.Collision)
}

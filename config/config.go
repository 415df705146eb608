// Package config holds the settings for driving an entity: scheduler cadence,
// logging and the host window. Files may be YAML or TOML.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Scheduler SchedulerConfig `yaml:"scheduler" toml:"scheduler"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
	Window    WindowConfig    `yaml:"window" toml:"window"`
}

type SchedulerConfig struct {
	FrameInterval   time.Duration `yaml:"frame_interval" toml:"frame_interval"`
	PhysicsStep     time.Duration `yaml:"physics_step" toml:"physics_step"`
	MaxPhysicsSteps int           `yaml:"max_physics_steps" toml:"max_physics_steps"` // per frame; surplus time is dropped
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" or "console"
}

type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

var ErrUnknownFormat = errors.New("unknown config format")

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Scheduler: DefaultScheduler(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "scenecore",
		},
	}
}

// DefaultScheduler returns a 60 Hz frame with a 50 Hz physics step.
func DefaultScheduler() SchedulerConfig {
	return SchedulerConfig{
		FrameInterval:   time.Second / 60,
		PhysicsStep:     20 * time.Millisecond,
		MaxPhysicsSteps: 5,
	}
}

// Load reads the file at path over the defaults. The decoder is chosen by
// extension: .yaml/.yml or .toml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "config %s has extension %q", path, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects settings the scheduler cannot run with.
func (c *Config) Validate() error {
	return c.Scheduler.Validate()
}

func (s SchedulerConfig) Validate() error {
	if s.FrameInterval <= 0 {
		return errors.Errorf("frame_interval must be positive, got %s", s.FrameInterval)
	}
	if s.PhysicsStep <= 0 {
		return errors.Errorf("physics_step must be positive, got %s", s.PhysicsStep)
	}
	if s.MaxPhysicsSteps <= 0 {
		return errors.Errorf("max_physics_steps must be positive, got %d", s.MaxPhysicsSteps)
	}
	return nil
}

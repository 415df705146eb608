package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/plus3/scenecore/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 20*time.Millisecond, cfg.Scheduler.PhysicsStep)
	assert.Equal(t, 5, cfg.Scheduler.MaxPhysicsSteps)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 800, cfg.Window.Width)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "scene.yaml", `
scheduler:
  physics_step: 10ms
  max_physics_steps: 8
logging:
  level: debug
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.Scheduler.PhysicsStep)
	assert.Equal(t, 8, cfg.Scheduler.MaxPhysicsSteps)
	assert.Equal(t, time.Second/60, cfg.Scheduler.FrameInterval, "unset fields keep their defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadYAMLUnknownField(t *testing.T) {
	path := writeFile(t, "scene.yml", "scheduler:\n  tick: 5ms\n")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "scene.toml", `
[scheduler]
frame_interval = "8ms"

[window]
width = 1280
height = 720
title = "demo"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8*time.Millisecond, cfg.Scheduler.FrameInterval)
	assert.Equal(t, 20*time.Millisecond, cfg.Scheduler.PhysicsStep)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "demo", cfg.Window.Title)
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeFile(t, "scene.json", "{}")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUnknownFormat))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidScheduler(t *testing.T) {
	path := writeFile(t, "scene.yaml", "scheduler:\n  max_physics_steps: 0\n")

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "max_physics_steps")
}

func TestSchedulerValidate(t *testing.T) {
	s := config.DefaultScheduler()
	s.PhysicsStep = 0
	assert.ErrorContains(t, s.Validate(), "physics_step")

	s = config.DefaultScheduler()
	s.FrameInterval = -time.Millisecond
	assert.ErrorContains(t, s.Validate(), "frame_interval")
}

func TestNewLogger(t *testing.T) {
	log, err := config.NewLogger(config.LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel), "debug is disabled at warn")

	log, err = config.NewLogger(config.LoggingConfig{Level: "nonsense"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel), "unknown level falls back to info")
}

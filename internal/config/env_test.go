package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "assets", s.ConfigDir)
	assert.Equal(t, "encounter.yaml", s.Encounter)
	assert.Equal(t, uint64(12345), s.Seed)
	assert.Equal(t, 1, s.Runs)
	assert.Equal(t, 500, s.MaxTurns)
	assert.True(t, s.Record)
}

func TestLoadSettings_Env(t *testing.T) {
	t.Setenv("SIM_CONFIG_DIR", "/etc/sim")
	t.Setenv("SIM_SEED", "7")
	t.Setenv("SIM_RUNS", "200")
	t.Setenv("SIM_RECORD", "false")
	t.Setenv("SIM_LOG_LEVEL", "debug")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "/etc/sim", s.ConfigDir)
	assert.Equal(t, uint64(7), s.Seed)
	assert.Equal(t, 200, s.Runs)
	assert.False(t, s.Record)

	lvl, err := s.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadSettings_BadValue(t *testing.T) {
	t.Setenv("SIM_RUNS", "many")

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "parse env")
}

func TestSlogLevel_Unknown(t *testing.T) {
	lvl, err := Settings{LogLevel: "loud"}.SlogLevel()
	assert.Error(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, 6, GridSize())
	assert.Equal(t, []int{3, 2, 2, 1, 1, 1}, Fleet())
	assert.Equal(t, int64(0), Seed())
}

func TestLoadWithConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"difficulty": "hard",
		"fleet": [2, 1],
		"seed": 99
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "battleship.cfg.json"), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", LogLevel())
	assert.Equal(t, 7, GridSize())
	assert.Equal(t, []int{2, 1}, Fleet())
	assert.Equal(t, int64(99), Seed())
}

func TestGridSizeOverridesDifficulty(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{"difficulty": "easy", "gridSize": 9}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "battleship.cfg.json"), []byte(cfg), 0644))

	require.NoError(t, Load(dir))
	assert.Equal(t, 9, GridSize())
}

func TestDifficultyPresets(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, Load(t.TempDir()))

	viper.Set("difficulty", DifficultyEasy)
	assert.Equal(t, 5, GridSize())

	viper.Set("difficulty", DifficultyNormal)
	assert.Equal(t, 6, GridSize())

	viper.Set("difficulty", DifficultyHard)
	assert.Equal(t, 7, GridSize())
}

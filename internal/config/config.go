package config

import (
	"fmt"

	"github.com/spf13/viper"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// Load reads configuration from the optional JSON config file and sets
// default values. configDir is the directory containing the config file;
// a missing file leaves the defaults in place.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("difficulty", DifficultyNormal)
	// 0 means derive the grid size from the difficulty preset
	viper.SetDefault("gridSize", 0)
	viper.SetDefault("fleet", mb.DefaultFleet)
	// 0 means seed the rng from the current time
	viper.SetDefault("seed", 0)

	viper.SetConfigName("battleship.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("error reading config file: %v", err)
	}
	return nil
}

// GridSize resolves the configured grid size: an explicit gridSize wins,
// otherwise the difficulty preset decides.
func GridSize() int {
	if size := viper.GetInt("gridSize"); size > 0 {
		return size
	}
	switch viper.GetString("difficulty") {
	case DifficultyEasy:
		return mb.GridSizeEasy
	case DifficultyHard:
		return mb.GridSizeHard
	default:
		return mb.GridSizeNormal
	}
}

// Fleet returns the configured ship lengths.
func Fleet() []int {
	return viper.GetIntSlice("fleet")
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString("logLevel")
}

// Seed returns the configured rng seed.
func Seed() int64 {
	return viper.GetInt64("seed")
}

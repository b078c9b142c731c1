package aoc

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the runner settings read from the environment.
// Variables carry the AOC_ prefix, e.g. AOC_INPUT_DIR.
type Config struct {
	// Year selects the <input-dir>/<year> directory.
	Year int `envconfig:"YEAR" default:"2023"`

	// InputDir is the directory holding <year>/<day>.input files.
	InputDir string `envconfig:"INPUT_DIR" default:"."`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig loads envFile (skipped when it does not exist) and then the
// AOC_* environment variables. Variables already set in the environment win
// over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := envconfig.Process("AOC", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

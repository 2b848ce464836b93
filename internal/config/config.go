package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel      string
	Year          int
	InputFile     string
	PuzzlesConfig string
}

// Load reads the configuration from the environment. Call godotenv.Load
// first to pick up a .env file.
func Load() *Config {
	return &Config{
		LogLevel:      getEnv("AOC_LOG_LEVEL", "info"),
		Year:          getEnvInt("AOC_YEAR", 2024),
		InputFile:     getEnv("AOC_INPUT_FILE", "input.txt"),
		PuzzlesConfig: getEnv("AOC_PUZZLES_CONFIG", "configs/puzzles.yaml"),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

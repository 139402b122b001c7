package config

import (
	"log"
	"os"
	"strconv"

	"github.com/beka-birhanu/grid-maze/game/maze"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth  int     // Requested maze width for every level
	MazeHeight int     // Requested maze height for every level
	MazeSeed   *uint64 // Seed of the first level; nil means OS entropy
	LogFile    string  // File receiving log output; empty discards logs
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}

	return Config{
		MazeWidth:  getEnvAsIntWithDefault("MAZE_WIDTH", maze.DefaultDimension),
		MazeHeight: getEnvAsIntWithDefault("MAZE_HEIGHT", maze.DefaultDimension),
		MazeSeed:   getEnvAsUint64("MAZE_SEED"),
		LogFile:    getEnvWithDefault("MAZE_LOG_FILE", ""),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer, or returns a default value if not set.
// It logs a fatal error if the value cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("%s[APP]%s %s[FATAL]%s Environment variable %s must be an integer: %v", ColorGreen, ColorReset, ColorRed, ColorReset, key, err)
	}
	return value
}

// getEnvAsUint64 retrieves the value of an environment variable as an unsigned integer, or nil if not set.
// It logs a fatal error if the value cannot be parsed.
func getEnvAsUint64(key string) *uint64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return nil
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("%s[APP]%s %s[FATAL]%s Environment variable %s must be an unsigned integer: %v", ColorGreen, ColorReset, ColorRed, ColorReset, key, err)
	}
	return &value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

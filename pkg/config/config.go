package config

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"log/slog"
	"os"
	"strconv"
)

const (
	EnvVerbose   = "IMAGE_FETCHER_VERBOSE"
	EnvProgress  = "IMAGE_FETCHER_PROGRESS"
	EnvUserAgent = "IMAGE_FETCHER_USER_AGENT"
)

// Config holds the knobs that may be set from the environment or flags.
// Output folder, timeout and size limit are fixed.
type Config struct {
	Verbose   bool
	Progress  bool
	UserAgent string
}

// Load reads an optional .env file from the working directory and then
// the process environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(envFile string) (*Config, error) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrap(err, "failed to load "+envFile)
		}
	}

	return &Config{
		Verbose:   getBool(EnvVerbose, false),
		Progress:  getBool(EnvProgress, false),
		UserAgent: getEnv(EnvUserAgent, ""),
	}, nil
}

func (c Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

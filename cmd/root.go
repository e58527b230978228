package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	APIBase      string
	DBPath       string
	LogLevel     string
	LogFile      string
	PollInterval time.Duration
	Logout       bool
}

const defaultAPIBase = "https://api.mesaya.app/api/v1"

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(version string) (*Config, error) {
	config := &Config{}

	// Load .env files first so env-based defaults work with flag parsing.
	_ = godotenv.Load(".env.local", ".env")

	var showVersion bool
	flag.StringVar(&config.APIBase, "api", "", "Base URL of the backend API (or set TAVOLO_API_URL)")
	flag.StringVar(&config.DBPath, "db", "", "Path to SQLite cache file (default: ~/.tavolo/tavolo.db)")
	flag.StringVar(&config.LogLevel, "log-level", "", "Log level: debug, info, warn, error (or set TAVOLO_LOG_LEVEL)")
	flag.StringVar(&config.LogFile, "log-file", "", "Log file path (default: ~/.tavolo/tavolo.log)")
	flag.DurationVar(&config.PollInterval, "poll", 10*time.Second, "List refresh interval")
	flag.BoolVar(&config.Logout, "logout", false, "Drop the stored session and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("tavolo " + version)
		os.Exit(0)
	}

	if config.APIBase == "" {
		config.APIBase = os.Getenv("TAVOLO_API_URL")
	}
	if config.APIBase == "" {
		config.APIBase = defaultAPIBase
	}
	if config.LogLevel == "" {
		config.LogLevel = os.Getenv("TAVOLO_LOG_LEVEL")
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	var configDir string
	if config.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		configDir = filepath.Join(home, ".tavolo")
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		config.DBPath = filepath.Join(configDir, "tavolo.db")
	} else {
		configDir = filepath.Dir(config.DBPath)
	}

	if config.LogFile == "" {
		config.LogFile = filepath.Join(configDir, "tavolo.log")
	}

	return config, nil
}

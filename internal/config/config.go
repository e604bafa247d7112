package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Log     LogConfig
	Snap    SnapConfig
	ModBerg ModBergConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// SnapConfig holds SNAP climate API configuration
type SnapConfig struct {
	BaseURL string // IEM point endpoint
	Era     string // projection era block, e.g. "2040_2070"
}

// ModBergConfig holds the physical constants of the computation
type ModBergConfig struct {
	LatentHeatWater    float64 // BTU/lb
	SolidsSpecificHeat float64
	FreezingTemp       float64 // °F
	LambdaPrecision    int     // decimal places λ is rounded to; -1 disables
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.frost-depth")

	// Set defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("snap.baseUrl", "http://snap-data.io/iem/point")
	viper.SetDefault("snap.era", "2040_2070")
	viper.SetDefault("modberg.latentHeatWater", 144.0)
	viper.SetDefault("modberg.solidsSpecificHeat", 0.17)
	viper.SetDefault("modberg.freezingTemp", 32.0)
	viper.SetDefault("modberg.lambdaPrecision", 2)

	// Read from environment variables
	viper.SetEnvPrefix("FROST_DEPTH")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// Package config reads the runtime configuration of the alchemy binaries
// from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/napolitain/alchemy/internal/growth"
	"github.com/napolitain/alchemy/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Environment    string
	LogLevel       string
	LogFormat      string
	Version        string
	GRPCPort       int
	MetricsAddr    string // empty disables the metrics endpoint
	ProfilePath    string
	CurveCacheSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:    getEnv("ALCHEMY_ENV", logger.EnvironmentDev),
		LogLevel:       getEnv("LOG_LEVEL", ""),
		LogFormat:      getEnv("LOG_FORMAT", ""),
		Version:        getEnv("VERSION", logger.DefaultVersion),
		MetricsAddr:    getEnv("METRICS_ADDR", ":9090"),
		ProfilePath:    getEnv("PROFILE_PATH", ""),
	}

	port, err := getEnvAsInt("GRPC_PORT", 50051)
	if err != nil {
		return nil, err
	}
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("invalid GRPC_PORT value: %d out of range", port)
	}
	cfg.GRPCPort = port

	// 0 selects the default size
	size, err := getEnvAsInt("CURVE_CACHE_SIZE", growth.DefaultMemoSize)
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, fmt.Errorf("invalid CURVE_CACHE_SIZE value: %d is negative", size)
	}
	cfg.CurveCacheSize = size

	return cfg, nil
}

// Development reports whether the binaries run in development mode
func (c *Config) Development() bool {
	switch strings.ToLower(c.Environment) {
	case "dev", "development":
		return true
	}
	return false
}

// LoggerConfig derives the logger settings. Level and format fall back to the
// environment's preset when unset.
func (c *Config) LoggerConfig(serviceName string) logger.Config {
	base := logger.ProductionConfig()
	if c.Development() {
		base = logger.DevelopmentConfig()
	}
	level := base.Level
	if c.LogLevel != "" {
		level = c.LogLevel
	}
	format := base.Format
	if c.LogFormat != "" {
		format = c.LogFormat
	}
	return logger.NewConfig(level, format, serviceName, c.Version, c.Environment, c.Development())
}

// GRPCAddr returns the listen address of the gRPC server
func (c *Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default
// value when it is unset. Malformed values are errors.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults for the two deployments. The gRPC port and the historical
// client port (50051) disagree on purpose; see cmd/analyze.
const (
	DefaultGRPCPort    = 50071
	DefaultHTTPAddr    = ":8000"
	DefaultGRPCWorkers = 10
	// DefaultMetricsAddr is where the gRPC deployment serves /metrics;
	// the HTTP deployment serves it on its main listener instead.
	DefaultMetricsAddr = ":9091"
)

// Config is immutable after Load and passed explicitly to constructors.
type Config struct {
	// APIKey authenticates against the Gemini API. Required.
	APIKey string
	// Model overrides the deployment's default model when set.
	Model string

	GRPCPort    int
	HTTPAddr    string
	GRPCWorkers int
	MetricsAddr string
}

// LoadEnvFile loads a local .env file into the environment. Errors are
// ignored since the file may not exist.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Load reads configuration from the environment. It fails when
// GOOGLE_API_KEY is absent so a misconfigured process dies at startup
// instead of on its first request.
func Load() (*Config, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is not set")
	}

	cfg := &Config{
		APIKey:      apiKey,
		Model:       os.Getenv("GEMINI_MODEL"),
		GRPCPort:    DefaultGRPCPort,
		HTTPAddr:    DefaultHTTPAddr,
		GRPCWorkers: DefaultGRPCWorkers,
		MetricsAddr: DefaultMetricsAddr,
	}

	if v := os.Getenv("GRPC_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("GRPC_PORT must be a valid integer: %w", err)
		}
		cfg.GRPCPort = port
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("GRPC_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("GRPC_WORKERS must be a valid integer: %w", err)
		}
		cfg.GRPCWorkers = workers
	}

	return cfg, nil
}

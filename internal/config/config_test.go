package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GRPC_PORT", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("GRPC_WORKERS", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("METRICS_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, DefaultGRPCPort, cfg.GRPCPort)
	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, DefaultGRPCWorkers, cfg.GRPCWorkers)
	assert.Equal(t, DefaultMetricsAddr, cfg.MetricsAddr)
	assert.Empty(t, cfg.Model)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GRPC_PORT", "50051")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("GRPC_WORKERS", "4")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("METRICS_ADDR", ":9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 4, cfg.GRPCWorkers)
	assert.Equal(t, ":9999", cfg.MetricsAddr)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GRPC_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

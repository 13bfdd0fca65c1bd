package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so the host environment does
// not leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"WORKFORCE_SERVER_PORT",
		"WORKFORCE_SERVER_LOG_LEVEL",
		"WORKFORCE_TASKS_DEFAULT_PRIORITY",
		"WORKFORCE_TASKS_SEED_STAFF",
		"WORKFORCE_TELEMETRY_OTEL_ENDPOINT",
		"WORKFORCE_TELEMETRY_SERVICE_NAME",
	} {
		if original, ok := os.LookupEnv(name); ok {
			t.Cleanup(func() { os.Setenv(name, original) })
		} else {
			t.Cleanup(func() { os.Unsetenv(name) })
		}
		require.NoError(t, os.Unsetenv(name))
	}
}

// TestLoadDefaults verifies the defaults when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(t.TempDir())

	require.NoError(t, err, "LoadFrom() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "MEDIUM", cfg.Tasks.DefaultPriority)
	assert.True(t, cfg.Tasks.SeedStaff)
	assert.Empty(t, cfg.Telemetry.OTelEndpoint)
	assert.Equal(t, "workforce-api", cfg.Telemetry.ServiceName)
}

// TestLoadFromEnv verifies that environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKFORCE_SERVER_PORT", "9090")
	t.Setenv("WORKFORCE_SERVER_LOG_LEVEL", "debug")
	t.Setenv("WORKFORCE_TASKS_DEFAULT_PRIORITY", "high")
	t.Setenv("WORKFORCE_TASKS_SEED_STAFF", "false")
	t.Setenv("WORKFORCE_TELEMETRY_OTEL_ENDPOINT", "localhost:4318")

	cfg, err := LoadFrom(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "HIGH", cfg.Tasks.DefaultPriority, "priority is normalised to upper case")
	assert.False(t, cfg.Tasks.SeedStaff)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.OTelEndpoint)
}

// TestLoadFromFiles verifies config.yaml and .env handling and precedence.
func TestLoadFromFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	yaml := "server:\n  port: 7070\n  log_level: warn\ntasks:\n  default_priority: LOW\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WORKFORCE_SERVER_LOG_LEVEL=error\n"), 0o600))

	cfg, err := LoadFrom(dir)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port, "port comes from config.yaml")
	assert.Equal(t, "error", cfg.Server.LogLevel, ".env values override config.yaml")
	assert.Equal(t, "LOW", cfg.Tasks.DefaultPriority)
}

// TestLoadValidationErrors verifies that invalid values are rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{name: "Invalid port number", envVars: map[string]string{"WORKFORCE_SERVER_PORT": "999999"}},
		{name: "Invalid log level", envVars: map[string]string{"WORKFORCE_SERVER_LOG_LEVEL": "invalid-level"}},
		{name: "Invalid default priority", envVars: map[string]string{"WORKFORCE_TASKS_DEFAULT_PRIORITY": "URGENT"}},
		{name: "Invalid OTLP endpoint", envVars: map[string]string{"WORKFORCE_TELEMETRY_OTEL_ENDPOINT": "not an endpoint"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFrom(t.TempDir())

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

// TestLoadMalformedConfigFile verifies that a broken config.yaml is reported.
func TestLoadMalformedConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o600))

	cfg, err := LoadFrom(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Nil(t, cfg)
}

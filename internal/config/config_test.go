package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-instruction-api/internal/validate"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, validate.DefaultMaxAmount, cfg.MaxAmount)
	assert.False(t, cfg.LegacyErrorStatus)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SOLIX_LISTEN_ADDR", ":9000")
	t.Setenv("SOLIX_LOG_LEVEL", "debug")
	t.Setenv("SOLIX_LOG_JSON", "true")
	t.Setenv("SOLIX_CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SOLIX_MAX_AMOUNT", "1000")
	t.Setenv("SOLIX_LEGACY_ERROR_STATUS", "1")
	t.Setenv("SOLIX_WRITE_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, uint64(1000), cfg.MaxAmount)
	assert.Equal(t, validate.Policy{MaxAmount: 1000}, cfg.Policy())
	assert.True(t, cfg.LegacyErrorStatus)
	assert.Equal(t, 3*time.Second, cfg.WriteTimeout)
}

func TestFromEnv_BadValues(t *testing.T) {
	for key, value := range map[string]string{
		"SOLIX_MAX_AMOUNT":     "-1",
		"SOLIX_LOG_JSON":       "maybe",
		"SOLIX_READ_TIMEOUT":   "soon",
		"SOLIX_MAX_BODY_BYTES": "big",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := FromEnv()
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad listen addr", func(c *Config) { c.ListenAddr = "8080" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"zero max amount", func(c *Config) { c.MaxAmount = 0 }},
		{"zero body limit", func(c *Config) { c.MaxBodyBytes = 0 }},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }},
		{"blank cors origin", func(c *Config) { c.CORSOrigins = []string{" "} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
	assert.Error(t, Validate(nil))
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SOLIX_TEST_DOTENV=from-file\n"), 0644))

	t.Setenv("SOLIX_TEST_DOTENV", "")
	os.Unsetenv("SOLIX_TEST_DOTENV")
	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("SOLIX_TEST_DOTENV"))
}

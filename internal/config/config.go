// Package config holds the service configuration.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	klog "solana-instruction-api/internal/log"
	"solana-instruction-api/internal/validate"
)

// EnvPrefix prefixes every environment variable read by the service.
const EnvPrefix = "SOLIX_"

// Config is the runtime configuration of the HTTP service.
type Config struct {
	ListenAddr string

	Log LogConfig

	// CORSOrigins lists allowed origins. Empty disables CORS headers.
	CORSOrigins []string

	// MaxAmount caps amount and lamports fields.
	MaxAmount uint64

	// LegacyErrorStatus answers validation failures with 200 instead of 400.
	LegacyErrorStatus bool

	MaxBodyBytes    int64
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// LogConfig configures the global logger.
type LogConfig struct {
	Level string
	JSON  bool
	File  string
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		ListenAddr: "127.0.0.1:8080",
		Log: LogConfig{
			Level: "info",
		},
		MaxAmount:       validate.DefaultMaxAmount,
		MaxBodyBytes:    1 << 20,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 15 * time.Second,
	}
}

// LoadEnvFile loads variables from path (default ".env") without overriding
// variables already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// FromEnv returns Default overlaid with SOLIX_* environment variables.
func FromEnv() (*Config, error) {
	cfg := Default()

	if v, ok := lookup("LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		cfg.Log.File = v
	}
	if v, ok := lookup("CORS_ORIGINS"); ok {
		cfg.CORSOrigins = splitList(v)
	}

	var err error
	if v, ok := lookup("LOG_JSON"); ok {
		if cfg.Log.JSON, err = strconv.ParseBool(v); err != nil {
			return nil, envError("LOG_JSON", err)
		}
	}
	if v, ok := lookup("LEGACY_ERROR_STATUS"); ok {
		if cfg.LegacyErrorStatus, err = strconv.ParseBool(v); err != nil {
			return nil, envError("LEGACY_ERROR_STATUS", err)
		}
	}
	if v, ok := lookup("MAX_AMOUNT"); ok {
		if cfg.MaxAmount, err = strconv.ParseUint(v, 10, 64); err != nil {
			return nil, envError("MAX_AMOUNT", err)
		}
	}
	if v, ok := lookup("MAX_BODY_BYTES"); ok {
		if cfg.MaxBodyBytes, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, envError("MAX_BODY_BYTES", err)
		}
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"READ_TIMEOUT", &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", &cfg.WriteTimeout},
		{"IDLE_TIMEOUT", &cfg.IdleTimeout},
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		if v, ok := lookup(d.key); ok {
			if *d.dst, err = time.ParseDuration(v); err != nil {
				return nil, envError(d.key, err)
			}
		}
	}

	return cfg, nil
}

// Validate checks the configuration for operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if _, _, err := net.SplitHostPort(cfg.ListenAddr); err != nil {
		return fmt.Errorf("listen address %q: %w", cfg.ListenAddr, err)
	}
	if !klog.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log level must be debug, info, warn, error or off, got %q", cfg.Log.Level)
	}
	if cfg.MaxAmount == 0 {
		return fmt.Errorf("max amount must be greater than 0")
	}
	if cfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be greater than 0")
	}
	for name, d := range map[string]time.Duration{
		"read timeout":     cfg.ReadTimeout,
		"write timeout":    cfg.WriteTimeout,
		"idle timeout":     cfg.IdleTimeout,
		"shutdown timeout": cfg.ShutdownTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	for i, origin := range cfg.CORSOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors origin [%d] is empty", i)
		}
	}
	return nil
}

// Policy returns the validation policy derived from the configuration.
func (c *Config) Policy() validate.Policy {
	return validate.Policy{MaxAmount: c.MaxAmount}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envError(key string, err error) error {
	return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
}

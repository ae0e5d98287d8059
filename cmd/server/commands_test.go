package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-instruction-api/internal/config"
)

func run(t *testing.T, cfg *config.Config, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(cfg)
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestKeypairCmd(t *testing.T) {
	out := run(t, config.Default(), "keypair")

	var kp struct {
		Pubkey string `json:"pubkey"`
		Secret string `json:"secret"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &kp))

	secret, err := solana.PrivateKeyFromBase58(kp.Secret)
	require.NoError(t, err)
	assert.Equal(t, kp.Pubkey, secret.PublicKey().String())
}

func TestVersionCmd(t *testing.T) {
	assert.Equal(t, "dev\n", run(t, config.Default(), "version"))
}

func TestServeFlagsOverrideConfig(t *testing.T) {
	cfg := config.Default()
	cmd := serveCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{
		"--listen", ":9999",
		"--max-amount", "42",
		"--legacy-error-status",
		"--cors-origin", "https://a.example",
		"--cors-origin", "https://b.example",
	}))

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, uint64(42), cfg.MaxAmount)
	assert.True(t, cfg.LegacyErrorStatus)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestServeRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cmd := NewRootCmd(cfg)
	cmd.SetArgs([]string{"serve", "--max-amount", "0"})
	assert.ErrorContains(t, cmd.Execute(), "max amount")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
port: "9000"
db:
  path: "test.db"
log:
  level: debug
sim:
  slot: weekend
  initial_families: 40
  initial_budget: 8000
  initial_tax_rate: 0.2
  sandbox: true
  seed: 77
  auto_advance_every: 2s
api:
  rate_limit: 1.5
  burst: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "test.db", cfg.DB.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "weekend", cfg.Sim.Slot)
	assert.Equal(t, 40, cfg.Sim.InitialFamilies)
	assert.Equal(t, 8000, cfg.Sim.InitialBudget)
	assert.InDelta(t, 0.2, cfg.Sim.InitialTaxRate, 1e-9)
	assert.InDelta(t, 0.05, cfg.Sim.InitialVatRate, 1e-9)
	assert.True(t, cfg.Sim.Sandbox)
	assert.Equal(t, int64(77), cfg.Sim.Seed)
	assert.Equal(t, 2*time.Second, cfg.Sim.AutoAdvanceEvery)
	assert.InDelta(t, 1.5, cfg.API.RateLimit, 1e-9)
	assert.Equal(t, 3, cfg.API.Burst)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "port: \"9000\"\n")
	t.Setenv("CITYSIM_PORT", "9191")
	t.Setenv("CITYSIM_SIM_INITIAL_BUDGET", "123")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.Port)
	assert.Equal(t, 123, cfg.Sim.InitialBudget)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_RejectsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "tax rate", body: "sim:\n  initial_tax_rate: 0.9\n"},
		{name: "vat rate", body: "sim:\n  initial_vat_rate: -0.1\n"},
		{name: "log level", body: "log:\n  level: loud\n"},
		{name: "burst", body: "api:\n  burst: 0\n"},
		{name: "port", body: "port: abc\n"},
		{name: "short key", body: "auth:\n  signing_key: abc\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "default", cfg.Sim.Slot)
	assert.Zero(t, cfg.Sim.AutoAdvanceEvery)

	cc := cfg.Sim.CityConfig()
	assert.Equal(t, 100, cc.Families)
	assert.Equal(t, 15000, cc.Budget)
	assert.InDelta(t, 0.10, cc.TaxRate, 1e-9)
}

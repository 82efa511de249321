package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
account:
  currency: USD
  balance: 25000
risk:
  default_risk_percent: 0.5
  default_stop_pips: 30
journal:
  db_path: /tmp/journal.db
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.InDelta(t, 25000, cfg.Account.Balance, 1e-9)
	assert.InDelta(t, 0.5, cfg.Risk.DefaultRiskPercent, 1e-9)
	assert.Equal(t, "/tmp/journal.db", cfg.Journal.DBPath)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  balance: 5000\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.InDelta(t, 5000, cfg.Account.Balance, 1e-9)
	assert.Equal(t, "USD", cfg.Account.Currency)
	assert.Equal(t, "./fxjournal.sqlite", cfg.Journal.DBPath)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := Default()
	cfg.Account.Balance = 42000
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 42000, got.Account.Balance, 1e-9)
}

func TestValidateFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no currency", func(c *Config) { c.Account.Currency = "" }},
		{"zero balance", func(c *Config) { c.Account.Balance = 0 }},
		{"zero risk", func(c *Config) { c.Risk.DefaultRiskPercent = 0 }},
		{"risk over 100", func(c *Config) { c.Risk.DefaultRiskPercent = 101 }},
		{"zero stop", func(c *Config) { c.Risk.DefaultStopPips = 0 }},
		{"no db path", func(c *Config) { c.Journal.DBPath = "" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
universe:
  symbols: [HBL, UBL]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yahoo", cfg.DataSource.Provider)
	assert.Equal(t, ".KA", cfg.DataSource.Suffix)
	assert.Equal(t, 1, cfg.Scan.Workers)
	assert.NotEmpty(t, cfg.Scan.Cron)
	assert.Equal(t, int64(30000), cfg.Universe.DefaultBaseline)
	// Strategy defaults survive a config that doesn't mention them.
	assert.Equal(t, 26.0, cfg.Strategy.RSIOversold)
	assert.Equal(t, 7.0, cfg.Strategy.MinConfidence)
	assert.Equal(t, 6.0, cfg.Strategy.Confidence.Base)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileStillUsable(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 26.0, cfg.Strategy.RSIOversold)
	assert.Error(t, cfg.Validate(), "empty universe must not validate")
}

func TestLoad_ExplicitValues(t *testing.T) {
	path := writeConfig(t, `
data_source:
  base_url: "https://bars.example.com"
  api_key: "k"
universe:
  symbols: [ENGRO]
  default_baseline: 60000
  baselines:
    ENGRO: 80000
strategy:
  rsi_oversold: 30
  min_confidence: 6.5
scan:
  workers: 4
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "rest", cfg.DataSource.Provider, "base_url implies the rest provider")
	assert.Equal(t, 30.0, cfg.Strategy.RSIOversold)
	assert.Equal(t, 6.5, cfg.Strategy.MinConfidence)
	assert.Equal(t, 2.5, cfg.Strategy.VolumeSurge, "untouched params keep defaults")
	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.Equal(t, int64(80000), cfg.Universe.Baselines["ENGRO"])
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
universe:
  symbols: [HBL]
`)
	t.Setenv("DATA_BASE_URL", "https://env.example.com")
	t.Setenv("DATA_PROVIDER", "rest")
	t.Setenv("SCAN_WORKERS", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rest", cfg.DataSource.Provider)
	assert.Equal(t, "https://env.example.com", cfg.DataSource.BaseURL)
	assert.Equal(t, 8, cfg.Scan.Workers)
}

func TestValidate_Errors(t *testing.T) {
	base := `
universe:
  symbols: [HBL]
`
	cases := []struct {
		name  string
		yaml  string
		fixup func(*Config)
	}{
		{"rest without base_url", base, func(c *Config) { c.DataSource.Provider = "rest"; c.DataSource.BaseURL = "" }},
		{"unknown provider", base, func(c *Config) { c.DataSource.Provider = "carrier-pigeon" }},
		{"telegram token without chat", base, func(c *Config) { c.Telegram.BotToken = "t" }},
		{"bad strategy", base, func(c *Config) { c.Strategy.VolumeSurge = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tc.yaml))
			require.NoError(t, err)
			tc.fixup(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("RECHECK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Queue.BatchSize)
	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
	assert.Equal(t, "*/15 * * * *", cfg.Reconcile.Schedule)
	assert.Equal(t, ":8791", cfg.Gateway.ListenAddr)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFileValues(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/recheck-test.db
gateway:
  url: http://gateway.internal:8791
queue:
  batch_size: 4
reconcile:
  reporting_url: https://reports.example.com/v1/rows
  schedule: "0 * * * *"
llm:
  provider: openai
  openai_api_key: sk-test
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/recheck-test.db", cfg.DBPath)
	assert.Equal(t, "http://gateway.internal:8791", cfg.Gateway.URL)
	assert.Equal(t, 4, cfg.Queue.BatchSize)
	assert.Equal(t, 3, cfg.Queue.MaxAttempts, "unset fields keep defaults")

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, "openai", llmCfg.Provider)
	assert.Equal(t, "sk-test", llmCfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", llmCfg.OpenAI.Model, "provider defaults survive the overlay")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
db_path: /from/file.db
reconcile:
  schedule: "0 * * * *"
`)
	t.Setenv("RECHECK_DB", "/from/env.db")
	t.Setenv("RECHECK_SYNC_SCHEDULE", "*/5 * * * *")
	t.Setenv("RECHECK_QUEUE_BATCH_SIZE", "16")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
	assert.Equal(t, "*/5 * * * *", cfg.Reconcile.Schedule)
	assert.Equal(t, 16, cfg.Queue.BatchSize)
}

func TestEnvOverridesLLMSection(t *testing.T) {
	path := writeConfig(t, `
llm:
  provider: openai
  anthropic_api_key: file-key
`)
	t.Setenv("RECHECK_LLM_PROVIDER", "anthropic")
	t.Setenv("RECHECK_ANTHROPIC_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, "anthropic", llmCfg.Provider)
	assert.Equal(t, "env-key", llmCfg.Anthropic.APIKey)
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "1m0s", cfg.SweepInterval().String())
	assert.Equal(t, "1m0s", cfg.GatewayTimeout().String())
	assert.Equal(t, "30s", cfg.ReportingTimeout().String())
}

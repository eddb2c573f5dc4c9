package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, 1024, cfg.LLM.MaxTokens)
	assert.Equal(t, 120, cfg.LLM.RateLimit)
	assert.Equal(t, 3, cfg.Generator.BulletsPerItem)
	assert.Equal(t, 4, cfg.Generator.MaxConcurrent)
	assert.Equal(t, 3, cfg.BrowserPool.MaxInstances)
	assert.True(t, cfg.Renderer.HeadlessMode)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigin)
}

func TestLoadConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
server:
  port: 9090
llm:
  provider: "openrouter"
  model: "openai/gpt-4o-mini"
  rate_limit: 30
generator:
  bullets_per_item: 2
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "openrouter", cfg.LLM.Provider)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 30, cfg.LLM.RateLimit)
	assert.Equal(t, 2, cfg.Generator.BulletsPerItem)
	// Untouched values keep defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
}

func TestLoadConfig_EnvVarExpansion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
llm:
  api_key: "${TEST_RESUME_API_KEY}"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("TEST_RESUME_API_KEY", "sk-test-123")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", cfg.LLM.APIKey)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("LLM_PROVIDER", "openrouter")
	t.Setenv("LLM_API_KEY", "sk-env-key")
	t.Setenv("PERMITTED_ORIGIN", "https://app.example.com")
	t.Setenv("LLM_RATE_LIMIT", "45")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "openrouter", cfg.LLM.Provider)
	assert.Equal(t, "sk-env-key", cfg.LLM.APIKey)
	assert.Equal(t, "https://app.example.com", cfg.CORS.AllowedOrigin)
	assert.Equal(t, 45, cfg.LLM.RateLimit)
}

func TestLoadConfig_OpenRouterKeyFallback(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-or-key")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sk-or-key", cfg.LLM.APIKey)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("does/not/exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

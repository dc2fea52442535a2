package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("N8N_API_KEY", "")
	t.Setenv("N8N_API_URL", "")

	_, err := InitConfig(zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "N8N_API_KEY")
}

func TestInitConfigDefaultsBaseURL(t *testing.T) {
	t.Setenv("N8N_API_KEY", "secret")
	t.Setenv("N8N_API_URL", "")
	t.Setenv("N8N_MCP_DEBUG", "")

	cfg, err := InitConfig(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5678", cfg.BaseURL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.False(t, cfg.Debug)
}

func TestInitConfigTrimsTrailingSlash(t *testing.T) {
	t.Setenv("N8N_API_KEY", "secret")
	t.Setenv("N8N_API_URL", "https://n8n.example.com/")
	t.Setenv("N8N_MCP_DEBUG", "true")

	cfg, err := InitConfig(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "https://n8n.example.com", cfg.BaseURL)
	assert.True(t, cfg.Debug)
}

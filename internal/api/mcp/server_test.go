package mcp

import (
	"testing"

	"github.com/drujensen/n8n-mcp/internal/impl/config"
	"github.com/drujensen/n8n-mcp/internal/impl/n8n"
	"github.com/drujensen/n8n-mcp/internal/impl/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	client, err := n8n.NewClient(&config.Config{BaseURL: "http://localhost:5678", APIKey: "test-key"}, zap.NewNop())
	require.NoError(t, err)
	return tools.NewRegistry(client, zap.NewNop())
}

func TestDescribeToolSchemas(t *testing.T) {
	registry := newTestRegistry(t)

	descriptors := make(map[string]bool)
	for _, tool := range registry.ListTools() {
		described := describeTool(tool)
		descriptors[described.Name] = true
		assert.NotEmpty(t, described.Description, described.Name)
		assert.Equal(t, "object", described.InputSchema.Type, described.Name)
	}
	assert.Len(t, descriptors, 8)
}

func TestDescribeToolRequiredFields(t *testing.T) {
	registry := newTestRegistry(t)

	for _, tool := range registry.ListTools() {
		if tool.Name() != "create_workflow" {
			continue
		}
		described := describeTool(tool)
		assert.ElementsMatch(t, []string{"name", "nodes"}, described.InputSchema.Required)

		nodes, ok := described.InputSchema.Properties["nodes"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "array", nodes["type"])

		active, ok := described.InputSchema.Properties["active"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "boolean", active["type"])
	}
}

func TestNewServerRegistersCatalog(t *testing.T) {
	registry := newTestRegistry(t)
	srv := NewServer("n8n-mcp", "test", registry, zap.NewNop())
	require.NotNil(t, srv)
	assert.NotNil(t, srv.mcpServer)
}

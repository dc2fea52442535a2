package tools

import (
	"context"

	"github.com/drujensen/n8n-mcp/internal/domain/entities"
	"github.com/drujensen/n8n-mcp/internal/impl/n8n"

	"go.uber.org/zap"
)

// Registry holds the fixed tool catalog and dispatches calls by name.
// Every handler failure is converted here into an "Error: ..." text
// result; the transport never sees a protocol-level fault for them.
type Registry struct {
	toolsByName map[string]entities.Tool
	order       []string
	logger      *zap.Logger
}

func NewRegistry(client *n8n.Client, logger *zap.Logger) *Registry {
	registry := &Registry{
		toolsByName: make(map[string]entities.Tool),
		logger:      logger,
	}

	catalog := []entities.Tool{
		NewListWorkflowsTool(client, logger),
		NewGetWorkflowTool(client, logger),
		NewCreateWorkflowTool(client, logger),
		NewUpdateWorkflowTool(client, logger),
		NewDeleteWorkflowTool(client, logger),
		NewActivateWorkflowTool(client, logger),
		NewExecuteWorkflowTool(client, logger),
		NewGetExecutionsTool(client, logger),
	}
	for _, tool := range catalog {
		registry.toolsByName[tool.Name()] = tool
		registry.order = append(registry.order, tool.Name())
	}
	return registry
}

// ListTools returns the catalog in registration order.
func (r *Registry) ListTools() []entities.Tool {
	tools := make([]entities.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.toolsByName[name])
	}
	return tools
}

// Dispatch resolves a tool by name and executes it with the raw JSON
// argument object. The returned string is always a displayable result.
func (r *Registry) Dispatch(ctx context.Context, name, arguments string) string {
	tool, exists := r.toolsByName[name]
	if !exists {
		r.logger.Warn("Unknown tool requested", zap.String("tool", name))
		return "Error: Unknown tool: " + name
	}

	result, err := tool.Execute(ctx, arguments)
	if err != nil {
		r.logger.Debug("Tool call failed", zap.String("tool", name), zap.Error(err))
		return "Error: " + err.Error()
	}
	return result
}

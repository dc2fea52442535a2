package tools

import (
	"context"

	"github.com/drujensen/n8n-mcp/internal/domain/entities"
	"github.com/drujensen/n8n-mcp/internal/impl/n8n"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ListWorkflowsTool struct {
	client *n8n.Client
	logger *zap.Logger
}

func NewListWorkflowsTool(client *n8n.Client, logger *zap.Logger) *ListWorkflowsTool {
	return &ListWorkflowsTool{client: client, logger: logger}
}

func (t *ListWorkflowsTool) Name() string {
	return "list_workflows"
}

func (t *ListWorkflowsTool) Description() string {
	return "List all workflows in the n8n instance, optionally filtered by active status"
}

func (t *ListWorkflowsTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "active",
			Type:        "boolean",
			Description: "Only return workflows matching this active status. Omit to list all workflows",
			Required:    false,
		},
	}
}

func (t *ListWorkflowsTool) Execute(ctx context.Context, arguments string) (string, error) {
	t.logger.Debug("Listing workflows", zap.String("arguments", arguments))

	var args struct {
		Active *bool `json:"active"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", err
	}

	resp, err := t.client.ListWorkflows(ctx, args.Active)
	if err != nil {
		return "", err
	}
	return prettyJSON(resp), nil
}

var _ entities.Tool = (*ListWorkflowsTool)(nil)

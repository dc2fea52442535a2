package tools

import (
	"context"

	"github.com/drujensen/n8n-mcp/internal/domain/entities"
	"github.com/drujensen/n8n-mcp/internal/domain/errors"
	"github.com/drujensen/n8n-mcp/internal/impl/n8n"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type GetWorkflowTool struct {
	client *n8n.Client
	logger *zap.Logger
}

func NewGetWorkflowTool(client *n8n.Client, logger *zap.Logger) *GetWorkflowTool {
	return &GetWorkflowTool{client: client, logger: logger}
}

func (t *GetWorkflowTool) Name() string {
	return "get_workflow"
}

func (t *GetWorkflowTool) Description() string {
	return "Get the full definition of a single workflow by its ID"
}

func (t *GetWorkflowTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "id",
			Type:        "string",
			Description: "The workflow ID",
			Required:    true,
		},
	}
}

func (t *GetWorkflowTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", err
	}
	if args.ID == "" {
		return "", errors.ValidationErrorf("Workflow id is required")
	}

	t.logger.Debug("Fetching workflow", zap.String("id", args.ID))
	resp, err := t.client.GetWorkflow(ctx, args.ID)
	if err != nil {
		return "", err
	}
	return prettyJSON(resp), nil
}

var _ entities.Tool = (*GetWorkflowTool)(nil)

package tools

import (
	"context"

	"github.com/drujensen/n8n-mcp/internal/domain/entities"
	"github.com/drujensen/n8n-mcp/internal/impl/n8n"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultExecutionLimit = 20

type GetExecutionsTool struct {
	client *n8n.Client
	logger *zap.Logger
}

func NewGetExecutionsTool(client *n8n.Client, logger *zap.Logger) *GetExecutionsTool {
	return &GetExecutionsTool{client: client, logger: logger}
}

func (t *GetExecutionsTool) Name() string {
	return "get_executions"
}

func (t *GetExecutionsTool) Description() string {
	return "List recent workflow executions, optionally filtered by workflow ID"
}

func (t *GetExecutionsTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "workflowId",
			Type:        "string",
			Description: "Only return executions of this workflow. Omit for all workflows",
			Required:    false,
		},
		{
			Name:        "limit",
			Type:        "number",
			Description: "Maximum number of executions to return (default 20)",
			Required:    false,
		},
	}
}

func (t *GetExecutionsTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		WorkflowID string `json:"workflowId"`
		Limit      int    `json:"limit"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", err
	}
	if args.Limit <= 0 {
		args.Limit = defaultExecutionLimit
	}

	t.logger.Debug("Listing executions",
		zap.String("workflow_id", args.WorkflowID),
		zap.Int("limit", args.Limit))

	resp, err := t.client.ListExecutions(ctx, args.WorkflowID, args.Limit)
	if err != nil {
		return "", err
	}
	return prettyJSON(resp), nil
}

var _ entities.Tool = (*GetExecutionsTool)(nil)

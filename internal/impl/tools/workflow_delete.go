package tools

import (
	"context"
	"fmt"

	"github.com/drujensen/n8n-mcp/internal/domain/entities"
	"github.com/drujensen/n8n-mcp/internal/domain/errors"
	"github.com/drujensen/n8n-mcp/internal/impl/n8n"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DeleteWorkflowTool struct {
	client *n8n.Client
	logger *zap.Logger
}

func NewDeleteWorkflowTool(client *n8n.Client, logger *zap.Logger) *DeleteWorkflowTool {
	return &DeleteWorkflowTool{client: client, logger: logger}
}

func (t *DeleteWorkflowTool) Name() string {
	return "delete_workflow"
}

func (t *DeleteWorkflowTool) Description() string {
	return "Permanently delete a workflow by its ID"
}

func (t *DeleteWorkflowTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "id",
			Type:        "string",
			Description: "The workflow ID to delete",
			Required:    true,
		},
	}
}

func (t *DeleteWorkflowTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", err
	}
	if args.ID == "" {
		return "", errors.ValidationErrorf("Workflow id is required")
	}

	t.logger.Debug("Deleting workflow", zap.String("id", args.ID))
	if _, err := t.client.DeleteWorkflow(ctx, args.ID); err != nil {
		return "", err
	}
	return fmt.Sprintf("Workflow %s deleted successfully", args.ID), nil
}

var _ entities.Tool = (*DeleteWorkflowTool)(nil)

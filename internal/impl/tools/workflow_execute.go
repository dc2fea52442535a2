package tools

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/drujensen/n8n-mcp/internal/domain/entities"
	"github.com/drujensen/n8n-mcp/internal/domain/errors"
	"github.com/drujensen/n8n-mcp/internal/impl/n8n"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ExecuteWorkflowTool struct {
	client *n8n.Client
	logger *zap.Logger
}

func NewExecuteWorkflowTool(client *n8n.Client, logger *zap.Logger) *ExecuteWorkflowTool {
	return &ExecuteWorkflowTool{client: client, logger: logger}
}

func (t *ExecuteWorkflowTool) Name() string {
	return "execute_workflow"
}

func (t *ExecuteWorkflowTool) Description() string {
	return "Start a workflow execution by ID with optional input data. Execution may continue asynchronously after this call returns"
}

func (t *ExecuteWorkflowTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "id",
			Type:        "string",
			Description: "The workflow ID to execute",
			Required:    true,
		},
		{
			Name:        "data",
			Type:        "object",
			Description: "Input data passed to the workflow (default empty)",
			Required:    false,
		},
	}
}

func (t *ExecuteWorkflowTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		ID   string         `json:"id"`
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", err
	}
	if args.ID == "" {
		return "", errors.ValidationErrorf("Workflow id is required")
	}
	if args.Data == nil {
		args.Data = map[string]any{}
	}

	resp, err := t.client.ExecuteWorkflow(ctx, args.ID, map[string]any{
		"workflowData": args.Data,
	})
	if err != nil {
		// 404/405 means the per-workflow execute route is not exposed;
		// retry once against the generic run endpoint.
		var reqErr *errors.RequestError
		if !stderrors.As(err, &reqErr) {
			return "", err
		}
		if reqErr.StatusCode != http.StatusNotFound && reqErr.StatusCode != http.StatusMethodNotAllowed {
			return "", err
		}
		t.logger.Debug("Execute endpoint unavailable, falling back to run", zap.String("id", args.ID))
		resp, err = t.client.RunWorkflow(ctx, map[string]any{
			"workflowId":   args.ID,
			"workflowData": args.Data,
		})
		if err != nil {
			return "", err
		}
	}

	return "Workflow execution started:\n\n" + prettyJSON(resp), nil
}

var _ entities.Tool = (*ExecuteWorkflowTool)(nil)

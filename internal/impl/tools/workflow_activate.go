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

type ActivateWorkflowTool struct {
	client *n8n.Client
	logger *zap.Logger
}

func NewActivateWorkflowTool(client *n8n.Client, logger *zap.Logger) *ActivateWorkflowTool {
	return &ActivateWorkflowTool{client: client, logger: logger}
}

func (t *ActivateWorkflowTool) Name() string {
	return "activate_workflow"
}

func (t *ActivateWorkflowTool) Description() string {
	return "Activate or deactivate a workflow by its ID"
}

func (t *ActivateWorkflowTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "id",
			Type:        "string",
			Description: "The workflow ID",
			Required:    true,
		},
		{
			Name:        "active",
			Type:        "boolean",
			Description: "true to activate, false to deactivate",
			Required:    true,
		},
	}
}

func (t *ActivateWorkflowTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		ID     string `json:"id"`
		Active *bool  `json:"active"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", err
	}
	if args.ID == "" {
		return "", errors.ValidationErrorf("Workflow id is required")
	}
	if args.Active == nil {
		return "", errors.ValidationErrorf("Active flag is required")
	}
	active := *args.Active

	resp, err := t.client.SetWorkflowActive(ctx, args.ID, active)
	if err != nil {
		// Only a 405 means the deployment lacks PATCH support; every
		// other status propagates untouched.
		var reqErr *errors.RequestError
		if !stderrors.As(err, &reqErr) || reqErr.StatusCode != http.StatusMethodNotAllowed {
			return "", err
		}
		t.logger.Debug("PATCH not supported, falling back to full update", zap.String("id", args.ID))
		resp, err = t.setActiveViaUpdate(ctx, args.ID, active)
		if err != nil {
			return "", err
		}
	}

	verb := "deactivated"
	if active {
		verb = "activated"
	}
	return "Workflow " + verb + " successfully:\n\n" + prettyJSON(resp), nil
}

// setActiveViaUpdate is the read-modify-write fallback: fetch the full
// workflow, flip the flag locally, and replace the whole definition.
func (t *ActivateWorkflowTool) setActiveViaUpdate(ctx context.Context, id string, active bool) (json.RawMessage, error) {
	current, err := t.client.GetWorkflow(ctx, id)
	if err != nil {
		return nil, err
	}
	var workflow map[string]any
	if err := json.Unmarshal(current, &workflow); err != nil {
		return nil, errors.InternalErrorf("error parsing existing workflow: %v", err)
	}
	workflow["active"] = active
	return t.client.UpdateWorkflow(ctx, id, workflow)
}

var _ entities.Tool = (*ActivateWorkflowTool)(nil)

package tools

import (
	"context"

	"github.com/drujensen/n8n-mcp/internal/domain/entities"
	"github.com/drujensen/n8n-mcp/internal/domain/errors"
	"github.com/drujensen/n8n-mcp/internal/impl/defaults"
	"github.com/drujensen/n8n-mcp/internal/impl/n8n"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UpdateWorkflowTool struct {
	client *n8n.Client
	logger *zap.Logger
}

func NewUpdateWorkflowTool(client *n8n.Client, logger *zap.Logger) *UpdateWorkflowTool {
	return &UpdateWorkflowTool{client: client, logger: logger}
}

func (t *UpdateWorkflowTool) Name() string {
	return "update_workflow"
}

func (t *UpdateWorkflowTool) Description() string {
	return "Update an existing workflow. Fetches the current definition first and overlays the supplied fields; anything not supplied keeps its remote value"
}

func (t *UpdateWorkflowTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "id",
			Type:        "string",
			Description: "The workflow ID to update",
			Required:    true,
		},
		{
			Name:        "name",
			Type:        "string",
			Description: "New workflow name",
			Required:    false,
		},
		{
			Name:        "nodes",
			Type:        "array",
			Items:       []entities.Item{{Type: "object"}},
			Description: "Replacement node list. Normalized the same way as on creation",
			Required:    false,
		},
		{
			Name:        "connections",
			Type:        "object",
			Description: "Replacement connection map",
			Required:    false,
		},
		{
			Name:        "active",
			Type:        "boolean",
			Description: "New active state",
			Required:    false,
		},
		{
			Name:        "settings",
			Type:        "object",
			Description: "Replacement settings. Falls back to the remote value, then the standard bundle",
			Required:    false,
		},
	}
}

func (t *UpdateWorkflowTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		ID          string         `json:"id"`
		Name        *string        `json:"name"`
		Nodes       any            `json:"nodes"`
		Connections map[string]any `json:"connections"`
		Active      *bool          `json:"active"`
		Settings    map[string]any `json:"settings"`
		StaticData  map[string]any `json:"staticData"`
		Meta        map[string]any `json:"meta"`
		PinData     map[string]any `json:"pinData"`
		Tags        []any          `json:"tags"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", err
	}
	if args.ID == "" {
		return "", errors.ValidationErrorf("Workflow id is required")
	}

	// Read-before-write: the remote definition is the merge base. This
	// is not transactional against concurrent writers; last PUT wins.
	current, err := t.client.GetWorkflow(ctx, args.ID)
	if err != nil {
		return "", err
	}
	var existing map[string]any
	if err := json.Unmarshal(current, &existing); err != nil {
		return "", errors.InternalErrorf("error parsing existing workflow: %v", err)
	}

	merged := make(map[string]any, len(existing))
	for key, value := range existing {
		merged[key] = value
	}

	if args.Name != nil {
		merged["name"] = *args.Name
	}
	if args.Nodes != nil {
		rawNodes, ok := args.Nodes.([]any)
		if !ok {
			return "", errors.ValidationErrorf("Nodes must be an array")
		}
		nodes, err := normalizeNodes(rawNodes)
		if err != nil {
			return "", err
		}
		merged["nodes"] = nodes
	}
	if args.Connections != nil {
		merged["connections"] = filterConnections(args.Connections)
	}
	if args.Active != nil {
		merged["active"] = *args.Active
	}

	merged["settings"] = resolveField(args.Settings, existing["settings"], defaults.WorkflowSettings())
	merged["staticData"] = resolveField(args.StaticData, existing["staticData"], map[string]any{})
	merged["meta"] = resolveField(args.Meta, existing["meta"], defaults.WorkflowMeta())
	merged["pinData"] = resolveField(args.PinData, existing["pinData"], map[string]any{})
	merged["tags"] = resolveTags(args.Tags, existing["tags"])

	t.logger.Debug("Updating workflow", zap.String("id", args.ID))
	resp, err := t.client.UpdateWorkflow(ctx, args.ID, merged)
	if err != nil {
		return "", err
	}
	return "Workflow updated successfully:\n\n" + prettyJSON(resp), nil
}

// resolveField picks the caller's value, then the existing remote value,
// then the hardcoded default. Precedence is whole-value; maps are never
// merged key by key.
func resolveField(supplied map[string]any, existing any, fallback map[string]any) map[string]any {
	if supplied != nil {
		return supplied
	}
	if value, ok := existing.(map[string]any); ok && value != nil {
		return value
	}
	return fallback
}

func resolveTags(supplied []any, existing any) []any {
	if supplied != nil {
		return supplied
	}
	if value, ok := existing.([]any); ok && value != nil {
		return value
	}
	return []any{}
}

var _ entities.Tool = (*UpdateWorkflowTool)(nil)

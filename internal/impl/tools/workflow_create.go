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

type CreateWorkflowTool struct {
	client *n8n.Client
	logger *zap.Logger
}

func NewCreateWorkflowTool(client *n8n.Client, logger *zap.Logger) *CreateWorkflowTool {
	return &CreateWorkflowTool{client: client, logger: logger}
}

func (t *CreateWorkflowTool) Name() string {
	return "create_workflow"
}

func (t *CreateWorkflowTool) Description() string {
	return "Create a new workflow from a name, a list of nodes, and optional connections and settings"
}

func (t *CreateWorkflowTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "name",
			Type:        "string",
			Description: "The workflow name",
			Required:    true,
		},
		{
			Name:        "nodes",
			Type:        "array",
			Items:       []entities.Item{{Type: "object"}},
			Description: "The workflow nodes. Each node requires 'name' and 'type'; id, typeVersion, position and parameters are defaulted when omitted",
			Required:    true,
		},
		{
			Name:        "connections",
			Type:        "object",
			Description: "Mapping from a source node name to its downstream connections",
			Required:    false,
		},
		{
			Name:        "active",
			Type:        "boolean",
			Description: "Whether the workflow starts active (default false)",
			Required:    false,
		},
		{
			Name:        "settings",
			Type:        "object",
			Description: "Workflow settings. A standard bundle is applied when omitted",
			Required:    false,
		},
	}
}

func (t *CreateWorkflowTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		Name        string         `json:"name"`
		Nodes       any            `json:"nodes"`
		Connections map[string]any `json:"connections"`
		Active      bool           `json:"active"`
		Settings    map[string]any `json:"settings"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", err
	}

	if args.Name == "" || args.Nodes == nil {
		return "", errors.ValidationErrorf("Workflow name and nodes are required")
	}
	rawNodes, ok := args.Nodes.([]any)
	if !ok {
		return "", errors.ValidationErrorf("Nodes must be an array")
	}

	nodes, err := normalizeNodes(rawNodes)
	if err != nil {
		return "", err
	}

	settings := args.Settings
	if settings == nil {
		settings = defaults.WorkflowSettings()
	}

	workflow := entities.Workflow{
		Name:        args.Name,
		Nodes:       nodes,
		Connections: filterConnections(args.Connections),
		Active:      args.Active,
		Settings:    settings,
		StaticData:  map[string]any{},
		Meta:        defaults.WorkflowMeta(),
		PinData:     map[string]any{},
		Tags:        []any{},
	}

	t.logger.Debug("Creating workflow",
		zap.String("name", workflow.Name),
		zap.Int("nodes", len(workflow.Nodes)))

	resp, err := t.client.CreateWorkflow(ctx, workflow)
	if err != nil {
		return "", err
	}
	return "Workflow created successfully:\n\n" + prettyJSON(resp), nil
}

var _ entities.Tool = (*CreateWorkflowTool)(nil)

package tools

import (
	"github.com/drujensen/n8n-mcp/internal/domain/entities"
	"github.com/drujensen/n8n-mcp/internal/domain/errors"
	"github.com/drujensen/n8n-mcp/internal/impl/defaults"

	"github.com/goccy/go-json"
)

// normalizeNodes converts caller-supplied node objects into the shape
// n8n expects. Name and type are mandatory; every other field is filled
// with a deterministic default (except the generated id). The index is
// part of the position formula, so ordering matters.
func normalizeNodes(raw []any) ([]entities.Node, error) {
	nodes := make([]entities.Node, 0, len(raw))
	for i, item := range raw {
		obj, _ := item.(map[string]any)

		name := stringField(obj, "name")
		if name == "" {
			return nil, errors.ValidationErrorf("Node at index %d is missing required 'name' field", i)
		}
		nodeType := stringField(obj, "type")
		if nodeType == "" {
			return nil, errors.ValidationErrorf("Node at index %d is missing required 'type' field", i)
		}

		node := entities.Node{
			ID:          stringField(obj, "id"),
			Name:        name,
			Type:        nodeType,
			TypeVersion: intField(obj, "typeVersion", defaults.DefaultTypeVersion),
			Parameters:  mapField(obj, "parameters"),
			Disabled:    boolField(obj, "disabled"),
			NotesInFlow: boolField(obj, "notesInFlow"),
		}
		if node.ID == "" {
			node.ID = defaults.NewHexID()
		}

		position, ok := positionField(obj)
		if !ok {
			position = defaults.NodePosition(i)
		}
		node.Position = position

		nodes = append(nodes, node)
	}
	return nodes, nil
}

// filterConnections keeps only entries whose value is a non-null JSON
// object. Malformed entries are dropped silently rather than rejected.
func filterConnections(connections map[string]any) map[string]any {
	filtered := make(map[string]any, len(connections))
	for source, value := range connections {
		if obj, ok := value.(map[string]any); ok && obj != nil {
			filtered[source] = obj
		}
	}
	return filtered
}

func stringField(obj map[string]any, key string) string {
	value, _ := obj[key].(string)
	return value
}

func boolField(obj map[string]any, key string) bool {
	value, _ := obj[key].(bool)
	return value
}

func intField(obj map[string]any, key string, fallback int) int {
	switch value := obj[key].(type) {
	case float64:
		if value >= 1 {
			return int(value)
		}
	case int:
		if value >= 1 {
			return value
		}
	}
	return fallback
}

func mapField(obj map[string]any, key string) map[string]any {
	if value, ok := obj[key].(map[string]any); ok {
		return value
	}
	return map[string]any{}
}

// positionField accepts a 2-element numeric array; anything else is
// reported as malformed so the index-based default kicks in.
func positionField(obj map[string]any) ([2]int, bool) {
	raw, ok := obj["position"].([]any)
	if !ok || len(raw) != 2 {
		return [2]int{}, false
	}
	var position [2]int
	for i, item := range raw {
		number, ok := item.(float64)
		if !ok {
			return [2]int{}, false
		}
		position[i] = int(number)
	}
	return position, true
}

// prettyJSON re-indents a raw response body for display. Bodies that do
// not parse as JSON are returned as-is.
func prettyJSON(raw json.RawMessage) string {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return string(raw)
	}
	out, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(out)
}

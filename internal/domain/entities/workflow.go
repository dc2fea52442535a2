package entities

// Workflow is the shape this server submits to the n8n REST API when
// creating or replacing a workflow. Fields the API owns but we never
// interpret (staticData, meta, pinData, tags) ride along as opaque maps.
type Workflow struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Nodes       []Node         `json:"nodes"`
	Connections map[string]any `json:"connections"`
	Active      bool           `json:"active"`
	Settings    map[string]any `json:"settings"`
	StaticData  map[string]any `json:"staticData"`
	Meta        map[string]any `json:"meta"`
	PinData     map[string]any `json:"pinData"`
	Tags        []any          `json:"tags"`
}

// Node is a single step inside a workflow. Name and type are mandatory
// on input; everything else is defaulted during normalization.
type Node struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	TypeVersion int            `json:"typeVersion"`
	Position    [2]int         `json:"position"`
	Parameters  map[string]any `json:"parameters"`
	Disabled    bool           `json:"disabled"`
	NotesInFlow bool           `json:"notesInFlow"`
}

package entities

import "context"

type Item struct {
	Type string
}

type Parameter struct {
	Name        string
	Type        string
	Enum        []string
	Items       []Item
	Description string
	Required    bool
}

// Tool is the contract every operation handler implements. Execute takes
// the raw JSON argument object and returns the result as display text.
// Handler errors are normalized at the dispatch boundary; the transport
// never sees them as protocol faults.
type Tool interface {
	Name() string
	Description() string
	Parameters() []Parameter
	Execute(ctx context.Context, arguments string) (string, error)
}

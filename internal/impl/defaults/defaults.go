package defaults

import (
	"encoding/hex"

	"github.com/google/uuid"
)

const DefaultTypeVersion = 1

// NewHexID returns a 128-bit random identifier as 32 lowercase hex
// characters, the format n8n uses for node ids and instance ids.
func NewHexID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// NodePosition computes the canvas position for the i-th node when the
// caller did not supply one: nodes are laid out left to right on a
// single row.
func NodePosition(index int) [2]int {
	return [2]int{250 + index*250, 300}
}

// WorkflowSettings is the settings bundle applied when neither the
// caller nor the remote workflow provides one.
func WorkflowSettings() map[string]any {
	return map[string]any{
		"executionOrder":           "v1",
		"saveDataSuccessExecution": "all",
		"saveExecutionProgress":    true,
		"saveManualExecutions":     true,
		"callerPolicy":             "workflowsFromSameOwner",
	}
}

// WorkflowMeta returns a fresh meta block carrying a generated
// instanceId.
func WorkflowMeta() map[string]any {
	return map[string]any{
		"instanceId": NewHexID(),
	}
}

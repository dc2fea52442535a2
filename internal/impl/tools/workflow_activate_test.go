package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestActivateWorkflowPatchSucceeds(t *testing.T) {
	fake, client := newFakeN8N(t)
	fake.respond("PATCH", "/api/v1/workflows/wf-1", 200, `{"id":"wf-1","active":true}`)
	tool := NewActivateWorkflowTool(client, zap.NewNop())

	result, err := tool.Execute(context.Background(), `{"id":"wf-1","active":true}`)
	require.NoError(t, err)
	assert.Contains(t, result, "Workflow activated successfully")

	requests := fake.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPatch, requests[0].Method)
	assert.JSONEq(t, `{"active":true}`, string(requests[0].Body))
}

func TestActivateWorkflowFallsBackOn405(t *testing.T) {
	fake, client := newFakeN8N(t)
	fake.respond("PATCH", "/api/v1/workflows/wf-1", 405, `{"message":"method not allowed"}`)
	fake.respond("GET", "/api/v1/workflows/wf-1", 200, `{"id":"wf-1","name":"Flow","active":true,"nodes":[]}`)
	fake.respond("PUT", "/api/v1/workflows/wf-1", 200, `{"id":"wf-1","active":false}`)
	tool := NewActivateWorkflowTool(client, zap.NewNop())

	result, err := tool.Execute(context.Background(), `{"id":"wf-1","active":false}`)
	require.NoError(t, err)
	assert.Contains(t, result, "Workflow deactivated successfully")

	requests := fake.recorded()
	require.Len(t, requests, 3)
	assert.Equal(t, http.MethodPatch, requests[0].Method)
	assert.Equal(t, http.MethodGet, requests[1].Method)
	assert.Equal(t, http.MethodPut, requests[2].Method)

	putBody := requests[2].JSONBody(t)
	assert.Equal(t, false, putBody["active"])
	assert.Equal(t, "Flow", putBody["name"])
}

func TestActivateWorkflowOtherStatusPropagates(t *testing.T) {
	fake, client := newFakeN8N(t)
	fake.respond("PATCH", "/api/v1/workflows/wf-1", 500, `{"message":"boom"}`)
	tool := NewActivateWorkflowTool(client, zap.NewNop())

	_, err := tool.Execute(context.Background(), `{"id":"wf-1","active":true}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")

	// No fallback: the PATCH was the only request.
	require.Len(t, fake.recorded(), 1)
}

func TestActivateWorkflowRequiredArguments(t *testing.T) {
	tool := NewActivateWorkflowTool(deadClient(t), zap.NewNop())

	_, err := tool.Execute(context.Background(), `{"active":true}`)
	require.Error(t, err)
	assert.Equal(t, "Workflow id is required", err.Error())

	_, err = tool.Execute(context.Background(), `{"id":"wf-1"}`)
	require.Error(t, err)
	assert.Equal(t, "Active flag is required", err.Error())
}

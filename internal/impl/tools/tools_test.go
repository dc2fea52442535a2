package tools

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/drujensen/n8n-mcp/internal/impl/config"
	"github.com/drujensen/n8n-mcp/internal/impl/n8n"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordedRequest captures one request the fake n8n server saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   []byte
}

func (r recordedRequest) JSONBody(t *testing.T) map[string]any {
	t.Helper()
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &parsed))
	return parsed
}

// fakeN8N is an httptest-backed n8n API double. Responses are keyed by
// "METHOD /path"; unmatched requests get a 200 with an empty object.
type fakeN8N struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]fakeResponse
}

type fakeResponse struct {
	status int
	body   string
}

func (f *fakeN8N) respond(method, path string, status int, body string) {
	f.responses[method+" "+path] = fakeResponse{status: status, body: body}
}

func (f *fakeN8N) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeN8N) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Body:   body,
		})
		resp, ok := f.responses[r.Method+" "+r.URL.Path]
		f.mu.Unlock()

		if !ok {
			w.Write([]byte(`{}`))
			return
		}
		if resp.status != 0 {
			w.WriteHeader(resp.status)
		}
		w.Write([]byte(resp.body))
	}
}

func newFakeN8N(t *testing.T) (*fakeN8N, *n8n.Client) {
	t.Helper()
	fake := &fakeN8N{responses: make(map[string]fakeResponse)}
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	client, err := n8n.NewClient(&config.Config{BaseURL: server.URL, APIKey: "test-key"}, zap.NewNop())
	require.NoError(t, err)
	return fake, client
}

// deadClient returns a client whose server fails the test if reached,
// for asserting that validation errors short-circuit before any I/O.
func deadClient(t *testing.T) *n8n.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	}))
	t.Cleanup(server.Close)

	client, err := n8n.NewClient(&config.Config{BaseURL: server.URL, APIKey: "test-key"}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func mustJSON(t *testing.T, value any) string {
	t.Helper()
	out, err := json.Marshal(value)
	require.NoError(t, err)
	return string(out)
}

package n8n

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/drujensen/n8n-mcp/internal/domain/errors"
	"github.com/drujensen/n8n-mcp/internal/impl/config"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	apiPrefix      = "/api/v1"
	apiKeyHeader   = "X-N8N-API-KEY"
	requestTimeout = 30 * time.Second
)

// Client wraps outbound calls to the n8n REST API. Every request carries
// the static API key header and a fixed 30 second timeout; responses are
// returned as raw JSON for the handlers to pretty-print.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg *config.Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("apiKey cannot be empty")
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}, nil
}

// ListWorkflows reads the workflow collection. The active filter is only
// sent when the caller supplied one; nil means unfiltered, not false.
func (c *Client) ListWorkflows(ctx context.Context, active *bool) (json.RawMessage, error) {
	query := url.Values{}
	if active != nil {
		query.Set("active", strconv.FormatBool(*active))
	}
	return c.do(ctx, http.MethodGet, "/workflows", query, nil)
}

func (c *Client) GetWorkflow(ctx context.Context, id string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/workflows/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateWorkflow(ctx context.Context, workflow any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/workflows", nil, workflow)
}

// UpdateWorkflow issues a full replace of the remote workflow.
func (c *Client) UpdateWorkflow(ctx context.Context, id string, workflow any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, "/workflows/"+url.PathEscape(id), nil, workflow)
}

func (c *Client) DeleteWorkflow(ctx context.Context, id string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, "/workflows/"+url.PathEscape(id), nil, nil)
}

// SetWorkflowActive issues a partial update touching only the active
// flag. Older n8n versions reject PATCH with a 405; callers handle that
// by falling back to a full read-modify-write.
func (c *Client) SetWorkflowActive(ctx context.Context, id string, active bool) (json.RawMessage, error) {
	body := map[string]any{"active": active}
	return c.do(ctx, http.MethodPatch, "/workflows/"+url.PathEscape(id), nil, body)
}

func (c *Client) ExecuteWorkflow(ctx context.Context, id string, payload any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/workflows/"+url.PathEscape(id)+"/execute", nil, payload)
}

// RunWorkflow posts to the generic run endpoint, the fallback for n8n
// deployments without a per-workflow execute route.
func (c *Client) RunWorkflow(ctx context.Context, payload any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/workflows/run", nil, payload)
}

// ListExecutions reads execution history. The limit is always sent; the
// workflowId filter only when non-empty.
func (c *Client) ListExecutions(ctx context.Context, workflowID string, limit int) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if workflowID != "" {
		query.Set("workflowId", workflowID)
	}
	return c.do(ctx, http.MethodGet, "/executions", query, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	requestURL := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, errors.InternalErrorf("error marshaling request body: %v", err)
		}
		c.logger.Debug("Request body", zap.String("body", string(jsonBody)))
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, errors.InternalErrorf("error creating request: %v", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Request failed", zap.String("method", method), zap.String("url", requestURL), zap.Error(err))
		return nil, errors.InternalErrorf("request to %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.InternalErrorf("error reading response body: %v", err)
	}

	c.logger.Debug("Request completed",
		zap.String("method", method),
		zap.String("url", requestURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("body_bytes", len(respBody)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewRequestError(resp.StatusCode, resp.Status, respBody)
	}
	return respBody, nil
}

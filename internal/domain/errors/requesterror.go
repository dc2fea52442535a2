package errors

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// RequestError is a non-2xx response from the n8n API. It keeps the
// status code and raw body so callers can branch on specific statuses
// (the activate and execute fallbacks) instead of string-matching.
type RequestError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func NewRequestError(statusCode int, status string, body []byte) *RequestError {
	return &RequestError{
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
	}
}

// Error renders the failure as a single human-readable line:
// "HTTP {status} {statusText}" followed by the body's string form, its
// message/error field, or the whole body verbatim.
func (r *RequestError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "HTTP %d %s", r.StatusCode, statusText(r.Status, r.StatusCode))

	detail := r.detail()
	if detail != "" {
		b.WriteString(" - ")
		b.WriteString(detail)
	}
	return b.String()
}

func (r *RequestError) detail() string {
	body := strings.TrimSpace(string(r.Body))
	if body == "" {
		return ""
	}

	var asString string
	if err := json.Unmarshal(r.Body, &asString); err == nil {
		return asString
	}

	var asObject map[string]any
	if err := json.Unmarshal(r.Body, &asObject); err == nil {
		if msg, ok := asObject["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := asObject["error"].(string); ok && msg != "" {
			return msg
		}
	}
	return body
}

// statusText strips the leading "404" from Go's "404 Not Found" form so
// the code is not printed twice.
func statusText(status string, code int) string {
	return strings.TrimSpace(strings.TrimPrefix(status, fmt.Sprintf("%d", code)))
}

var _ error = &RequestError{}

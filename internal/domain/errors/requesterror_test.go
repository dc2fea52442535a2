package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestErrorNormalization(t *testing.T) {
	cases := []struct {
		name string
		err  *RequestError
		want string
	}{
		{
			name: "string body",
			err:  NewRequestError(400, "400 Bad Request", []byte(`"nodes are invalid"`)),
			want: "HTTP 400 Bad Request - nodes are invalid",
		},
		{
			name: "message field",
			err:  NewRequestError(404, "404 Not Found", []byte(`{"message":"workflow not found"}`)),
			want: "HTTP 404 Not Found - workflow not found",
		},
		{
			name: "error field",
			err:  NewRequestError(401, "401 Unauthorized", []byte(`{"error":"invalid api key"}`)),
			want: "HTTP 401 Unauthorized - invalid api key",
		},
		{
			name: "opaque object body",
			err:  NewRequestError(500, "500 Internal Server Error", []byte(`{"code":13}`)),
			want: `HTTP 500 Internal Server Error - {"code":13}`,
		},
		{
			name: "empty body",
			err:  NewRequestError(405, "405 Method Not Allowed", nil),
			want: "HTTP 405 Method Not Allowed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

package arm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSONRequestShape(t *testing.T) {
	t.Parallel()

	var seen *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"name":"app-1"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, nil, nil)
	var out struct {
		Name string `json:"name"`
	}
	err := c.GetJSON(context.Background(), "/subscriptions/sub-1/resourceGroups/rg-1/providers/Microsoft.Web/sites/app-1", "2016-08-01", &out)
	require.NoError(t, err)
	assert.Equal(t, "app-1", out.Name)

	require.NotNil(t, seen)
	assert.Equal(t, http.MethodGet, seen.Method)
	assert.Equal(t, "/subscriptions/sub-1/resourceGroups/rg-1/providers/Microsoft.Web/sites/app-1", seen.URL.Path)
	assert.Equal(t, "2016-08-01", seen.URL.Query().Get("api-version"))
	assert.NotEmpty(t, seen.Header.Get("x-ms-client-request-id"))
}

func TestPostJSONSendsBody(t *testing.T) {
	t.Parallel()

	var seenBody map[string]string
	var seenContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&seenBody)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, nil, nil)
	err := c.PostJSON(context.Background(), "/things", "2016-08-01", map[string]string{"key": "value"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "application/json; charset=utf-8", seenContentType)
	assert.Equal(t, map[string]string{"key": "value"}, seenBody)
}

func TestDeletePassesExtraQuery(t *testing.T) {
	t.Parallel()

	var seen *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(context.Background())
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewClient(server.URL, nil, nil)
	err := c.Delete(context.Background(), "/things/thing-1", "2016-08-01", map[string]string{"deleteMetrics": "true"})
	require.NoError(t, err)

	require.NotNil(t, seen)
	assert.Equal(t, http.MethodDelete, seen.Method)
	assert.Equal(t, "true", seen.URL.Query().Get("deleteMetrics"))
	assert.Equal(t, "2016-08-01", seen.URL.Query().Get("api-version"))
}

func TestGetJSONByURLIgnoresBaseURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/paged", r.URL.Path)
		assert.Equal(t, "token-123", r.URL.Query().Get("continuation"))
		_, _ = w.Write([]byte(`{"value":["a","b"]}`))
	}))
	defer server.Close()

	c := NewClient("https://unreachable.invalid", nil, nil)
	var out struct {
		Value []string `json:"value"`
	}
	err := c.GetJSONByURL(context.Background(), server.URL+"/paged?continuation=token-123", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out.Value)
}

func TestRequestErrorEnvelopeShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nested envelope",
			status:      http.StatusNotFound,
			body:        `{"error":{"code":"ResourceNotFound","message":"no such site"}}`,
			wantCode:    "ResourceNotFound",
			wantMessage: "no such site",
		},
		{
			name:        "flat envelope",
			status:      http.StatusBadRequest,
			body:        `{"Code":"400","Message":"bad request"}`,
			wantCode:    "400",
			wantMessage: "bad request",
		},
		{
			name:        "non json body",
			status:      http.StatusBadGateway,
			body:        `upstream unavailable`,
			wantMessage: "upstream unavailable",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClient(server.URL, nil, nil)
			err := c.GetJSON(context.Background(), "/things/thing-1", "2016-08-01", &struct{}{})

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, http.MethodGet, reqErr.Method)
			assert.Equal(t, "/things/thing-1", reqErr.Path)
			assert.Equal(t, tt.status, reqErr.StatusCode)
			assert.Equal(t, tt.wantCode, reqErr.Code)
			assert.Equal(t, tt.wantMessage, reqErr.Message)
		})
	}
}

func TestRequestErrorMessage(t *testing.T) {
	t.Parallel()

	withCode := &RequestError{Method: "POST", Path: "/p", StatusCode: 403, Code: "AuthorizationFailed", Message: "denied"}
	assert.Equal(t, "POST /p failed with status 403: AuthorizationFailed: denied", withCode.Error())

	bare := &RequestError{Method: "GET", Path: "/p", StatusCode: 502}
	assert.Equal(t, "GET /p failed with status 502", bare.Error())
}

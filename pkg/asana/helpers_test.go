package asana

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test_api_key"

/************ fake RoundTripper ************/

type fakeRT struct {
	mu      sync.Mutex
	records []*http.Request
	// handler decides the response; a non-nil error is a transport failure
	handler func(req *http.Request) (*http.Response, error)
}

func (f *fakeRT) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	f.records = append(f.records, req.Clone(req.Context()))
	f.mu.Unlock()
	return f.handler(req)
}

func (f *fakeRT) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func newResp(status int, body string, req *http.Request) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
		Request:    req,
	}
}

// newRTClient returns a client whose requests never leave the process.
func newRTClient(t *testing.T, handler func(req *http.Request) (*http.Response, error)) (*Client, *fakeRT) {
	t.Helper()
	rt := &fakeRT{handler: handler}
	c, err := New(Config{
		APIKey:     testAPIKey,
		AuthMode:   AuthBasic,
		HTTPClient: &http.Client{Transport: rt},
	})
	require.NoError(t, err)
	return c, rt
}

// failingRT fails the test on any request.
func failingRT(t *testing.T) func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		t.Errorf("unexpected request %s %s", req.Method, req.URL.Path)
		return newResp(http.StatusTeapot, "", req), nil
	}
}

/************ fake API server ************/

// newTestServer mounts routes under /api/1.0 and returns a client for it.
func newTestServer(t *testing.T, routes func(r chi.Router), mutate ...func(*Config)) *Client {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api/1.0", routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	cfg := Config{
		APIKey:   testAPIKey,
		AuthMode: AuthBasic,
		BaseURL:  srv.URL + "/api/1.0",
	}
	for _, m := range mutate {
		m(&cfg)
	}
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func writeData(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()
	writeJSON(t, w, status, map[string]any{"data": data})
}

func writeErrors(t *testing.T, w http.ResponseWriter, status int, messages ...string) {
	t.Helper()
	entries := make([]ErrorEntry, 0, len(messages))
	for _, m := range messages {
		entries = append(entries, ErrorEntry{Message: m})
	}
	writeJSON(t, w, status, map[string]any{"errors": entries})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// readData decodes a {"data": ...} request body into out.
func readData(t *testing.T, r *http.Request, out any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
	require.NotEmpty(t, env.Data, "request body has no data field")
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func strPtr(s string) *string { return &s }

package host

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/models"
)

// fitterHost serves the two endpoints a dispatch touches and records what
// it received.
type fitterHost struct {
	srv      *httptest.Server
	requests []string
	message  map[string]any
	result   map[string]any
}

func newFitterHost(t *testing.T) *fitterHost {
	f := &fitterHost{result: map[string]any{"cost": 0.05, "filesChanged": []string{"main.go"}}}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/session":
			_, _ = w.Write([]byte(`{"id":"fitter-1"}`))
		case "/session/fitter-1/message":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&f.message))
			require.NoError(t, json.NewEncoder(w).Encode(f.result))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func hostPort(t *testing.T, rawURL string) (string, int) {
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	hostname, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return hostname, port
}

func TestDispatcher_CreateSession(t *testing.T) {
	t.Run("creates a session and relays the prompt", func(t *testing.T) {
		f := newFitterHost(t)
		d := NewDispatcher(testClient(f.srv))

		resp, err := d.CreateSession(context.Background(), models.SessionRequest{
			Prompt:         "resume the stuck task",
			MaxTokenBudget: 100000,
			TimeoutMS:      60000,
			AgentMode:      "code",
			AutoApprove:    true,
		})
		require.NoError(t, err)

		assert.Equal(t, "fitter-1", resp.SessionID)
		assert.True(t, resp.Success)
		assert.InDelta(t, 0.05, resp.Cost, 1e-9)
		assert.Equal(t, []string{"main.go"}, resp.FilesChanged)

		assert.Equal(t, true, f.message["autoApprove"])
		assert.Equal(t, float64(100000), f.message["maxTokens"])
	})

	t.Run("targets the host and port named in the request", func(t *testing.T) {
		bound := newFitterHost(t)
		target := newFitterHost(t)
		d := NewDispatcher(testClient(bound.srv))

		hostname, port := hostPort(t, target.srv.URL)
		req := models.SessionRequest{
			Prompt:    "resume",
			AgentMode: "code",
			Host:      hostname,
			Port:      port,
		}
		resp, err := d.CreateSession(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, resp.Success)

		assert.Empty(t, bound.requests)
		assert.Equal(t, []string{"/session", "/session/fitter-1/message"}, target.requests)
	})

	t.Run("message failure yields an unsuccessful response, not an error", func(t *testing.T) {
		f := newFitterHost(t)
		f.result = map[string]any{"error": "session crashed"}
		d := NewDispatcher(testClient(f.srv))

		resp, err := d.CreateSession(context.Background(), models.SessionRequest{Prompt: "go", AgentMode: "code"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "session crashed", resp.Error)
		assert.Equal(t, "fitter-1", resp.SessionID)
	})

	t.Run("missing session id is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		}))
		t.Cleanup(srv.Close)

		_, err := NewDispatcher(testClient(srv)).CreateSession(context.Background(), models.SessionRequest{Prompt: "go"})
		assert.ErrorContains(t, err, "no id")
	})
}

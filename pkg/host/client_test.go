package host

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		baseURL:    srv.URL,
		httpClient: srv.Client(),
		logger:     slog.Default(),
	}
}

func TestClient_ListSessions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/session", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"s1","status":"idle","updatedAt":1700000000000},
			{"id":"s2","status":"running","updatedAt":"2023-11-14T22:13:20Z"},
			{"status":"orphan-without-id"}
		]`))
	}))
	defer srv.Close()

	sessions, err := testClient(srv).ListSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "s1", sessions[0].ID)
	assert.Equal(t, "idle", sessions[0].Status)
	assert.False(t, sessions[0].UpdatedAt.IsZero())
	// Epoch-millis and RFC3339 timestamps decode to the same instant.
	assert.True(t, sessions[0].UpdatedAt.Equal(sessions[1].UpdatedAt))
}

func TestClient_ListChildren(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/session/s1/children", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"c1"},{"id":"c2"}]`))
	}))
	defer srv.Close()

	children, err := testClient(srv).ListChildren(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, children)
}

func TestClient_Abort(t *testing.T) {
	t.Run("2xx is a live kill", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/session/s1/abort", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		alreadyDead, err := testClient(srv).Abort(context.Background(), "s1")
		require.NoError(t, err)
		assert.False(t, alreadyDead)
	})

	t.Run("404 means already dead", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		alreadyDead, err := testClient(srv).Abort(context.Background(), "gone")
		require.NoError(t, err)
		assert.True(t, alreadyDead)
	})

	t.Run("5xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := testClient(srv).Abort(context.Background(), "s1")
		assert.Error(t, err)
	})
}

func TestFlattenParts(t *testing.T) {
	t.Run("grouped shape with nested parts array", func(t *testing.T) {
		entries := []map[string]any{
			{
				"info": map[string]any{"role": "assistant"},
				"parts": []any{
					map[string]any{"type": "text", "text": "working on it"},
					map[string]any{
						"type":  "tool",
						"tool":  "bash",
						"state": map[string]any{"status": "error", "error": "exit 1"},
					},
				},
			},
		}
		parts := FlattenParts(entries)
		require.Len(t, parts, 2)
		assert.Equal(t, "text", parts[0].Type)
		assert.Equal(t, "working on it", parts[0].Content)
		assert.Equal(t, "tool", parts[1].Type)
		assert.Equal(t, "bash", parts[1].Tool)
		assert.Equal(t, "error", parts[1].Status)
		assert.Equal(t, "exit 1", parts[1].Error)
	})

	t.Run("flat shape where the entry is the part", func(t *testing.T) {
		entries := []map[string]any{
			{"type": "tool", "tool": "read", "state": map[string]any{"status": "completed"}},
			{"type": "text", "content": "done"},
		}
		parts := FlattenParts(entries)
		require.Len(t, parts, 2)
		assert.Equal(t, "read", parts[0].Tool)
		assert.Equal(t, "completed", parts[0].Status)
		assert.Equal(t, "done", parts[1].Content)
	})

	t.Run("entries without parts or type are skipped", func(t *testing.T) {
		entries := []map[string]any{
			{"info": map[string]any{"role": "user"}},
			nil,
		}
		assert.Empty(t, FlattenParts(entries))
	})
}

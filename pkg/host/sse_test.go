package host

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/models"
)

func TestReadSSEFrame(t *testing.T) {
	t.Run("event and data lines", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("event: message\ndata: {\"a\":1}\n\n"))
		event, data, err := readSSEFrame(reader)
		require.NoError(t, err)
		assert.Equal(t, "message", event)
		assert.Equal(t, `{"a":1}`, string(data))
	})

	t.Run("multi-line data joined with newlines", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("data: line1\ndata: line2\n\n"))
		_, data, err := readSSEFrame(reader)
		require.NoError(t, err)
		assert.Equal(t, "line1\nline2", string(data))
	})

	t.Run("comments and leading blank lines skipped", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("\n: keepalive\ndata: x\n\n"))
		_, data, err := readSSEFrame(reader)
		require.NoError(t, err)
		assert.Equal(t, "x", string(data))
	})

	t.Run("CRLF line endings", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("data: y\r\n\r\n"))
		_, data, err := readSSEFrame(reader)
		require.NoError(t, err)
		assert.Equal(t, "y", string(data))
	})
}

func sseServer(t *testing.T, frames string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/event", r.URL.Path)
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(frames))
	}))
}

func TestStreamEvents(t *testing.T) {
	t.Run("decodes events and ends cleanly", func(t *testing.T) {
		srv := sseServer(t, ""+
			"data: {\"type\":\"session.idle\",\"properties\":{\"info\":{\"id\":\"s1\"}}}\n\n"+
			": keepalive\n"+
			"data: not json\n\n"+
			"data: {\"type\":\"session.created\",\"properties\":{\"info\":{\"id\":\"s2\"}}}\n\n")
		defer srv.Close()

		var seen []string
		err := testClient(srv).StreamEvents(context.Background(), func(ev models.HostEvent) error {
			seen = append(seen, ev.Type)
			return nil
		})
		require.NoError(t, err)
		// The undecodable frame is skipped, not fatal.
		assert.Equal(t, []string{"session.idle", "session.created"}, seen)
	})

	t.Run("handler error propagates", func(t *testing.T) {
		srv := sseServer(t, "data: {\"type\":\"session.idle\",\"properties\":{}}\n\n")
		defer srv.Close()

		wantErr := errors.New("write failed")
		err := testClient(srv).StreamEvents(context.Background(), func(models.HostEvent) error {
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		err := testClient(srv).StreamEvents(context.Background(), func(models.HostEvent) error { return nil })
		assert.Error(t, err)
	})

	t.Run("cancellation returns context error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		srv := sseServer(t, "data: {\"type\":\"session.idle\",\"properties\":{}}\n\n")
		defer srv.Close()

		err := testClient(srv).StreamEvents(ctx, func(models.HostEvent) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/models"
	"github.com/punchd-io/punchd/pkg/services"
	testdb "github.com/punchd-io/punchd/test/database"
)

func TestMessageService_WriteMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewMessageService(client.Client)
	ctx := context.Background()
	ts := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("dedupes on session, ts and role", func(t *testing.T) {
		req := models.WriteMessageRequest{
			SessionID:      "m-1",
			Role:           "assistant",
			ContentType:    "text",
			ContentPreview: "working on it",
			TS:             ts,
		}
		inserted, err := svc.WriteMessage(ctx, req)
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = svc.WriteMessage(ctx, req)
		require.NoError(t, err)
		assert.False(t, inserted)

		req.Role = "user"
		inserted, err = svc.WriteMessage(ctx, req)
		require.NoError(t, err)
		assert.True(t, inserted)

		rows, err := svc.ListForSession(ctx, "m-1")
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("truncates long previews", func(t *testing.T) {
		inserted, err := svc.WriteMessage(ctx, models.WriteMessageRequest{
			SessionID:      "m-long",
			Role:           "assistant",
			ContentType:    "text",
			ContentPreview: strings.Repeat("x", 2000),
			TS:             ts,
		})
		require.NoError(t, err)
		assert.True(t, inserted)

		rows, err := svc.ListForSession(ctx, "m-long")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Len(t, rows[0].ContentPreview, 500)
	})

	t.Run("rejects missing role", func(t *testing.T) {
		_, err := svc.WriteMessage(ctx, models.WriteMessageRequest{SessionID: "m-1", TS: ts})
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestToolCallService_WriteToolCall(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewToolCallService(client.Client)
	ctx := context.Background()
	ts := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("dedupes on session, ts and tool name", func(t *testing.T) {
		req := models.WriteToolCallRequest{
			SessionID:   "tc-1",
			ToolName:    "bash",
			ArgsSummary: `{"command":"ls"}`,
			Status:      "completed",
			TS:          ts,
		}
		inserted, err := svc.WriteToolCall(ctx, req)
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = svc.WriteToolCall(ctx, req)
		require.NoError(t, err)
		assert.False(t, inserted)

		req.ToolName = "read_file"
		req.TS = ts.Add(time.Second)
		req.Status = "error"
		req.Error = "no such file"
		inserted, err = svc.WriteToolCall(ctx, req)
		require.NoError(t, err)
		assert.True(t, inserted)

		rows, err := svc.ListForSession(ctx, "tc-1")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.NotNil(t, rows[1].Error)
		assert.Equal(t, "no such file", *rows[1].Error)
	})

	t.Run("rejects missing tool name", func(t *testing.T) {
		_, err := svc.WriteToolCall(ctx, models.WriteToolCallRequest{SessionID: "tc-1", TS: ts})
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

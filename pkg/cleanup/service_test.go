package cleanup

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/models"
	"github.com/punchd-io/punchd/pkg/services"
	testdb "github.com/punchd-io/punchd/test/database"
)

func seedSession(t *testing.T, writer *services.Writer, sessionID, status string, completedAt time.Time) {
	t.Helper()
	ctx := context.Background()
	req := models.UpsertSessionRequest{SessionID: sessionID, Status: status}
	if status == "completed" || status == "failed" {
		req.CompletedAt = &completedAt
	}
	require.NoError(t, writer.UpsertSession(ctx, req))

	_, err := writer.WritePunch(ctx, &models.Punch{
		TaskID:     sessionID,
		PunchType:  models.PunchTypeToolCall,
		PunchKey:   "read_file",
		ObservedAt: completedAt,
		SourceHash: "cleanup-" + sessionID,
	})
	require.NoError(t, err)
	_, err = writer.WriteToolCall(ctx, models.WriteToolCallRequest{
		SessionID: sessionID, ToolName: "read_file", Status: "completed", TS: completedAt,
	})
	require.NoError(t, err)
}

func TestService_PruneSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	writer := services.NewWriter(client.Client)
	svc := NewService(client.Client, DefaultConfig())
	ctx := context.Background()

	old := time.Now().UTC().AddDate(0, 0, -120)
	recent := time.Now().UTC().Add(-time.Hour)

	seedSession(t, writer, "expired-1", "completed", old)
	seedSession(t, writer, "expired-2", "failed", old)
	seedSession(t, writer, "fresh", "completed", recent)
	seedSession(t, writer, "still-running", "running", old)
	_, err := writer.WriteChildRelation(ctx, "expired-1", "some-child")
	require.NoError(t, err)

	count, err := svc.PruneSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	sessions, err := writer.Sessions.List(ctx, 10, 0)
	require.NoError(t, err)
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []string{"fresh", "still-running"}, ids)

	// The expired sessions' punch record goes with them.
	punches, err := writer.Punches.ListForTask(ctx, "expired-1")
	require.NoError(t, err)
	assert.Empty(t, punches)
	children, err := writer.ChildRels.Children(ctx, "expired-1")
	require.NoError(t, err)
	assert.Empty(t, children)

	t.Run("second run is a no-op", func(t *testing.T) {
		count, err := svc.PruneSessions(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestService_PruneDetailRows(t *testing.T) {
	client := testdb.NewTestClient(t)
	writer := services.NewWriter(client.Client)
	svc := NewService(client.Client, DefaultConfig())
	ctx := context.Background()

	old := time.Now().UTC().Add(-30 * 24 * time.Hour)
	recent := time.Now().UTC().Add(-time.Hour)
	for i, ts := range []time.Time{old, recent} {
		_, err := writer.WriteMessage(ctx, models.WriteMessageRequest{
			SessionID: "s-detail", Role: "assistant", ContentType: "text",
			ContentPreview: fmt.Sprintf("msg %d", i), TS: ts,
		})
		require.NoError(t, err)
		_, err = writer.WriteToolCall(ctx, models.WriteToolCallRequest{
			SessionID: "s-detail", ToolName: "bash", Status: "completed", TS: ts,
		})
		require.NoError(t, err)
	}
	_, err := writer.WritePunch(ctx, &models.Punch{
		TaskID:     "s-detail",
		PunchType:  models.PunchTypeToolCall,
		PunchKey:   "bash",
		ObservedAt: old,
		SourceHash: "detail-punch",
	})
	require.NoError(t, err)

	count, err := svc.PruneDetailRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	messages, err := writer.Messages.ListForSession(ctx, "s-detail")
	require.NoError(t, err)
	assert.Len(t, messages, 1)
	calls, err := writer.ToolCalls.ListForSession(ctx, "s-detail")
	require.NoError(t, err)
	assert.Len(t, calls, 1)

	// Punches outlive the detail history.
	punches, err := writer.Punches.ListForTask(ctx, "s-detail")
	require.NoError(t, err)
	assert.Len(t, punches, 1)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, Config{
		Enabled:              true,
		SessionRetentionDays: 90,
		DetailTTL:            24 * time.Hour,
		Interval:             time.Hour,
	})

	svc.Start(context.Background())
	svc.Start(context.Background()) // duplicate Start is a no-op
	svc.Stop()
}

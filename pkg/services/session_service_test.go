package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/models"
	"github.com/punchd-io/punchd/pkg/services"
	testdb "github.com/punchd-io/punchd/test/database"
)

func TestSessionService_Upsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates then updates the same row", func(t *testing.T) {
		started := time.Now().UTC().Add(-time.Minute).Truncate(time.Second)
		created, err := svc.Upsert(ctx, models.UpsertSessionRequest{
			SessionID: "s-upsert",
			TaskID:    "s-upsert",
			Mode:      "code",
			Model:     "openai/gpt-4o",
			Status:    "running",
			StartedAt: &started,
		})
		require.NoError(t, err)
		assert.Equal(t, "running", string(created.Status))

		cost := 1.5
		completed := time.Now().UTC().Truncate(time.Second)
		updated, err := svc.Upsert(ctx, models.UpsertSessionRequest{
			SessionID:   "s-upsert",
			Status:      "completed",
			TotalCost:   &cost,
			CompletedAt: &completed,
			Outcome:     "done",
		})
		require.NoError(t, err)
		assert.Equal(t, "completed", string(updated.Status))
		assert.InDelta(t, 1.5, updated.TotalCost, 1e-9)
		require.NotNil(t, updated.Outcome)
		assert.Equal(t, "done", *updated.Outcome)
		// Immutable fields survive the update.
		assert.Equal(t, "code", updated.Mode)

		sessions, err := svc.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, sessions, 1)
	})

	t.Run("empty status on update leaves status untouched", func(t *testing.T) {
		_, err := svc.Upsert(ctx, models.UpsertSessionRequest{SessionID: "s-upsert", Model: "anthropic/claude"})
		require.NoError(t, err)
		row, err := svc.Get(ctx, "s-upsert")
		require.NoError(t, err)
		assert.Equal(t, "completed", string(row.Status))
		assert.Equal(t, "anthropic/claude", row.Model)
	})

	t.Run("rejects empty session id", func(t *testing.T) {
		_, err := svc.Upsert(ctx, models.UpsertSessionRequest{})
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestSessionService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSessionService_Snapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client)
	punches := services.NewPunchService(client.Client)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, models.UpsertSessionRequest{SessionID: "s-snap", Status: "running"})
	require.NoError(t, err)

	base := time.Now().UTC().Add(-time.Minute)
	for i, key := range []string{"read_file", "bash"} {
		cost := 0.1
		_, err := punches.WritePunch(ctx, &models.Punch{
			TaskID:     "s-snap",
			PunchType:  models.PunchTypeToolCall,
			PunchKey:   key,
			ObservedAt: base.Add(time.Duration(i) * time.Second),
			SourceHash: "snap-" + key,
			Cost:       &cost,
		})
		require.NoError(t, err)
	}
	_, err = punches.WritePunch(ctx, &models.Punch{
		TaskID:     "s-snap",
		PunchType:  models.PunchTypeStepComplete,
		PunchKey:   "step_finished",
		ObservedAt: base.Add(5 * time.Second),
		SourceHash: "snap-step",
	})
	require.NoError(t, err)

	snap, err := svc.Snapshot(ctx, "s-snap")
	require.NoError(t, err)
	assert.Equal(t, "running", snap.Status)
	assert.Equal(t, 2, snap.PunchCounts["tool_call"])
	assert.Equal(t, 1, snap.PunchCounts["step_complete"])
	assert.InDelta(t, 0.2, snap.TotalCost, 1e-9)
	require.NotNil(t, snap.LastObservedAt)
	assert.WithinDuration(t, base.Add(5*time.Second), *snap.LastObservedAt, time.Second)
}

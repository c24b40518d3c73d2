package services_test

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

func testPunch(taskID, key string) *models.Punch {
	return &models.Punch{
		TaskID:     taskID,
		PunchType:  models.PunchTypeToolCall,
		PunchKey:   key,
		ObservedAt: time.Now().UTC(),
		SourceHash: fmt.Sprintf("src-%s-%s", taskID, key),
	}
}

func TestPunchService_WritePunch(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewPunchService(client.Client)
	ctx := context.Background()

	t.Run("inserts new punch", func(t *testing.T) {
		cost := 0.25
		p := testPunch("task-1", "read_file")
		p.Cost = &cost
		inserted, err := svc.WritePunch(ctx, p)
		require.NoError(t, err)
		assert.True(t, inserted)

		rows, err := svc.ListForTask(ctx, "task-1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "read_file", rows[0].PunchKey)
		require.NotNil(t, rows[0].Cost)
		assert.InDelta(t, 0.25, *rows[0].Cost, 1e-9)
	})

	t.Run("replay of the same event is a no-op", func(t *testing.T) {
		p := testPunch("task-replay", "bash")
		for i := 0; i < 5; i++ {
			inserted, err := svc.WritePunch(ctx, p)
			require.NoError(t, err)
			assert.Equal(t, i == 0, inserted, "replay %d", i)
		}

		rows, err := svc.ListForTask(ctx, "task-replay")
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("rejects missing source hash", func(t *testing.T) {
		p := testPunch("task-1", "x")
		p.SourceHash = ""
		_, err := svc.WritePunch(ctx, p)
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects unknown punch type", func(t *testing.T) {
		p := testPunch("task-1", "y")
		p.PunchType = "bogus"
		_, err := svc.WritePunch(ctx, p)
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("nil client", func(t *testing.T) {
		var nilSvc services.PunchService
		_, err := nilSvc.WritePunch(ctx, testPunch("task-1", "z"))
		assert.ErrorIs(t, err, services.ErrNotConnected)
	})
}

func TestPunchService_Counting(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewPunchService(client.Client)
	ctx := context.Background()

	for _, key := range []string{"read_file", "read_dir", "write_to_file", "edit_file"} {
		_, err := svc.WritePunch(ctx, testPunch("task-count", key))
		require.NoError(t, err)
	}
	// Same keys on another task must not leak into the counts.
	_, err := svc.WritePunch(ctx, testPunch("task-other", "read_file"))
	require.NoError(t, err)

	t.Run("CountMatching with LIKE wildcard", func(t *testing.T) {
		count, err := svc.CountMatching(ctx, "task-count", models.PunchTypeToolCall, "read%")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("CountMatching exact key", func(t *testing.T) {
		count, err := svc.CountMatching(ctx, "task-count", models.PunchTypeToolCall, "edit_file")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("CountMatching wrong type", func(t *testing.T) {
		count, err := svc.CountMatching(ctx, "task-count", models.PunchTypeStepComplete, "read%")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("CountKeysIn", func(t *testing.T) {
		count, err := svc.CountKeysIn(ctx, "task-count", models.PunchTypeToolCall,
			[]string{"write_to_file", "edit_file", "apply_diff"})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

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

func TestChildRelationService_WriteChildRelation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewChildRelationService(client.Client)
	ctx := context.Background()

	t.Run("records edge once", func(t *testing.T) {
		inserted, err := svc.WriteChildRelation(ctx, "p1", "c1")
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = svc.WriteChildRelation(ctx, "p1", "c1")
		require.NoError(t, err)
		assert.False(t, inserted)

		children, err := svc.Children(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"c1"}, children)
	})

	t.Run("rejects empty ids", func(t *testing.T) {
		_, err := svc.WriteChildRelation(ctx, "", "c1")
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("children of unknown parent is empty", func(t *testing.T) {
		children, err := svc.Children(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, children)
	})
}

func TestChildRelationService_SyncFromPunches(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewChildRelationService(client.Client)
	punches := services.NewPunchService(client.Client)
	ctx := context.Background()

	writeSpawn := func(punchType models.PunchType, parent, child string) {
		t.Helper()
		_, err := punches.WritePunch(ctx, &models.Punch{
			TaskID:     parent,
			PunchType:  punchType,
			PunchKey:   services.ChildSpawnKey(child),
			ObservedAt: time.Now().UTC(),
			SourceHash: "spawn-" + parent + "-" + child,
		})
		require.NoError(t, err)
	}

	writeSpawn(models.PunchTypeWorkflow, "parent-a", "child-1")
	writeSpawn(models.PunchTypeWorkflow, "parent-a", "child-2")
	writeSpawn(models.PunchTypeSessionLifecycle, "parent-b", "child-3")
	// One edge already recorded before the backfill.
	_, err := svc.WriteChildRelation(ctx, "parent-a", "child-1")
	require.NoError(t, err)

	inserted, err := svc.SyncFromPunches(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	children, err := svc.Children(ctx, "parent-a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"child-1", "child-2"}, children)

	t.Run("re-running backfill inserts nothing", func(t *testing.T) {
		inserted, err := svc.SyncFromPunches(ctx)
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})
}

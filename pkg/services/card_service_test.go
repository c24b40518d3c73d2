package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/models"
	"github.com/punchd-io/punchd/pkg/services"
	testdb "github.com/punchd-io/punchd/test/database"
)

func TestCardService_Put(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCardService(client.Client)
	ctx := context.Background()

	t.Run("round-trips requirement rows", func(t *testing.T) {
		reqs := []models.CardRequirement{
			{PunchType: models.PunchTypeToolCall, PunchKeyPattern: "read_file%", Required: true, Description: "must read the input"},
			{PunchType: models.PunchTypeToolCall, PunchKeyPattern: "rm%", Required: true, Forbidden: true},
		}
		require.NoError(t, svc.Put(ctx, "card-rt", reqs))

		got, err := svc.GetRequirements(ctx, "card-rt")
		require.NoError(t, err)
		require.Len(t, got, 2)
		for i := range got {
			assert.Equal(t, "card-rt", got[i].CardID)
		}
		assert.Equal(t, "read_file%", got[0].PunchKeyPattern)
		assert.Equal(t, "must read the input", got[0].Description)
		assert.True(t, got[1].Forbidden)
	})

	t.Run("put replaces previous rows", func(t *testing.T) {
		require.NoError(t, svc.Put(ctx, "card-rt", []models.CardRequirement{
			{PunchType: models.PunchTypeStepComplete, PunchKeyPattern: "step_finished", Required: true},
		}))

		got, err := svc.GetRequirements(ctx, "card-rt")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, models.PunchTypeStepComplete, got[0].PunchType)
	})

	t.Run("unknown card has no requirements", func(t *testing.T) {
		got, err := svc.GetRequirements(ctx, "card-unknown")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rejects invalid rows", func(t *testing.T) {
		err := svc.Put(ctx, "card-bad", []models.CardRequirement{
			{PunchType: "bogus", PunchKeyPattern: "x"},
		})
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)

		err = svc.Put(ctx, "card-bad", []models.CardRequirement{
			{PunchType: models.PunchTypeToolCall},
		})
		require.ErrorAs(t, err, &verr)

		err = svc.Put(ctx, "", nil)
		require.ErrorAs(t, err, &verr)
	})
}

package punchcard

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

type validatorFixture struct {
	validator *Validator
	punches   *services.PunchService
	cards     *services.CardService
	childRels *services.ChildRelationService
}

func newValidatorFixture(t *testing.T) *validatorFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	punches := services.NewPunchService(client.Client)
	cards := services.NewCardService(client.Client)
	childRels := services.NewChildRelationService(client.Client)
	return &validatorFixture{
		validator: NewValidator(punches, cards, childRels),
		punches:   punches,
		cards:     cards,
		childRels: childRels,
	}
}

func (f *validatorFixture) writePunch(t *testing.T, taskID string, punchType models.PunchType, key string) {
	t.Helper()
	inserted, err := f.punches.WritePunch(context.Background(), &models.Punch{
		TaskID:     taskID,
		PunchType:  punchType,
		PunchKey:   key,
		ObservedAt: time.Now().UTC(),
		SourceHash: fmt.Sprintf("hash-%s-%s-%s", taskID, punchType, key),
	})
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestValidator_Validate(t *testing.T) {
	f := newValidatorFixture(t)
	ctx := context.Background()

	t.Run("wildcard requirement matches recorded tool call", func(t *testing.T) {
		require.NoError(t, f.cards.Put(ctx, "card-read", []models.CardRequirement{
			{PunchType: models.PunchTypeToolCall, PunchKeyPattern: "read_file%", Required: true},
		}))
		f.writePunch(t, "task-read", models.PunchTypeToolCall, "read_file")

		result, err := f.validator.Validate(ctx, "task-read", "card-read")
		require.NoError(t, err)
		assert.Equal(t, models.ValidationPass, result.Status)
		assert.Empty(t, result.Missing)
		assert.Empty(t, result.Violations)
	})

	t.Run("missing required punch fails", func(t *testing.T) {
		require.NoError(t, f.cards.Put(ctx, "card-step", []models.CardRequirement{
			{PunchType: models.PunchTypeStepComplete, PunchKeyPattern: "step_finished", Required: true, Description: "session ran at least one step"},
		}))

		result, err := f.validator.Validate(ctx, "task-empty", "card-step")
		require.NoError(t, err)
		assert.Equal(t, models.ValidationFail, result.Status)
		require.Len(t, result.Missing, 1)
		assert.Contains(t, result.Missing[0], "session ran at least one step")
		assert.Empty(t, result.Violations)
	})

	t.Run("forbidden punch present is a violation", func(t *testing.T) {
		require.NoError(t, f.cards.Put(ctx, "card-no-writes", []models.CardRequirement{
			{PunchType: models.PunchTypeToolCall, PunchKeyPattern: "write%", Required: true, Forbidden: true},
		}))
		f.writePunch(t, "task-writer", models.PunchTypeToolCall, "write_to_file")

		result, err := f.validator.Validate(ctx, "task-writer", "card-no-writes")
		require.NoError(t, err)
		assert.Equal(t, models.ValidationFail, result.Status)
		require.Len(t, result.Violations, 1)
		assert.Contains(t, result.Violations[0], "write%")
	})

	t.Run("forbidden punch absent passes", func(t *testing.T) {
		result, err := f.validator.Validate(ctx, "task-clean", "card-no-writes")
		require.NoError(t, err)
		assert.Equal(t, models.ValidationPass, result.Status)
	})

	t.Run("optional rows are skipped", func(t *testing.T) {
		require.NoError(t, f.cards.Put(ctx, "card-optional", []models.CardRequirement{
			{PunchType: models.PunchTypeToolCall, PunchKeyPattern: "never_called", Required: false},
			{PunchType: models.PunchTypeToolCall, PunchKeyPattern: "read_file%", Required: true},
		}))

		result, err := f.validator.Validate(ctx, "task-read", "card-optional")
		require.NoError(t, err)
		assert.Equal(t, models.ValidationPass, result.Status)
	})

	t.Run("empty card fails rather than passing vacuously", func(t *testing.T) {
		result, err := f.validator.Validate(ctx, "task-read", "card-does-not-exist")
		require.NoError(t, err)
		assert.Equal(t, models.ValidationFail, result.Status)
		assert.Empty(t, result.Missing)
		assert.Empty(t, result.Violations)
	})

	t.Run("same punches same card yields same verdict", func(t *testing.T) {
		first, err := f.validator.Validate(ctx, "task-read", "card-read")
		require.NoError(t, err)
		second, err := f.validator.Validate(ctx, "task-read", "card-read")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestValidator_CheckToolAdherence(t *testing.T) {
	f := newValidatorFixture(t)
	ctx := context.Background()

	f.writePunch(t, "task-adh", models.PunchTypeToolCall, "write_to_file")
	f.writePunch(t, "task-adh", models.PunchTypeToolCall, "edit_file")
	f.writePunch(t, "task-adh", models.PunchTypeToolCall, "apply_diff")
	// Reads do not count as mutations.
	f.writePunch(t, "task-adh", models.PunchTypeToolCall, "read_file")

	t.Run("count within range", func(t *testing.T) {
		result, err := f.validator.CheckToolAdherence(ctx, "task-adh", 1, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Count)
		assert.True(t, result.WithinRange)
	})

	t.Run("count above range", func(t *testing.T) {
		result, err := f.validator.CheckToolAdherence(ctx, "task-adh", 0, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Count)
		assert.False(t, result.WithinRange)
	})

	t.Run("no mutations within zero range", func(t *testing.T) {
		result, err := f.validator.CheckToolAdherence(ctx, "task-none", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Count)
		assert.True(t, result.WithinRange)
	})
}

func TestValidator_VerifySubtasks(t *testing.T) {
	f := newValidatorFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cards.Put(ctx, "card-child", []models.CardRequirement{
		{PunchType: models.PunchTypeToolCall, PunchKeyPattern: "read_file%", Required: true},
	}))

	_, err := f.childRels.WriteChildRelation(ctx, "parent-1", "child-pass")
	require.NoError(t, err)
	_, err = f.childRels.WriteChildRelation(ctx, "parent-1", "child-fail")
	require.NoError(t, err)
	f.writePunch(t, "child-pass", models.PunchTypeToolCall, "read_file")

	verification, err := f.validator.VerifySubtasks(ctx, "parent-1", "card-child")
	require.NoError(t, err)
	assert.False(t, verification.AllChildrenValid)
	require.Len(t, verification.Children, 2)
	assert.Equal(t, "child-pass", verification.Children[0].ChildID)
	assert.True(t, verification.Children[0].Result.Passed())
	assert.Equal(t, "child-fail", verification.Children[1].ChildID)
	assert.False(t, verification.Children[1].Result.Passed())

	t.Run("parent with no children passes", func(t *testing.T) {
		verification, err := f.validator.VerifySubtasks(ctx, "parent-childless", "card-child")
		require.NoError(t, err)
		assert.True(t, verification.AllChildrenValid)
		assert.Empty(t, verification.Children)
	})
}

// Package services implements the idempotent persistence layer over the
// versioned store. Each service is a thin struct over the Ent client; every
// write rides the unique constraints declared in ent/schema, so replaying an
// event sequence any number of times yields the same set of rows.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/punchd-io/punchd/ent"
	"github.com/punchd-io/punchd/ent/punch"
	"github.com/punchd-io/punchd/pkg/models"
)

// PunchService persists punches with source-hash idempotency.
type PunchService struct {
	client *ent.Client
}

// NewPunchService creates a new PunchService
func NewPunchService(client *ent.Client) *PunchService {
	return &PunchService{client: client}
}

// WritePunch inserts p unless a row with the same source hash already exists.
// The check and insert are atomic against concurrent writers: the unique
// constraint on source_hash rejects the duplicate and the conflict is
// swallowed. Returns true when a new row was inserted.
func (s *PunchService) WritePunch(httpCtx context.Context, p *models.Punch) (bool, error) {
	if s.client == nil {
		return false, ErrNotConnected
	}
	if p.SourceHash == "" {
		return false, NewValidationError("source_hash", "required")
	}
	if !p.PunchType.IsValid() {
		return false, NewValidationError("punch_type", fmt.Sprintf("unknown type %q", p.PunchType))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Punch.Create().
		SetID(uuid.New().String()).
		SetTaskID(p.TaskID).
		SetPunchType(punch.PunchType(p.PunchType)).
		SetPunchKey(p.PunchKey).
		SetObservedAt(p.ObservedAt).
		SetSourceHash(p.SourceHash).
		SetNillableCost(p.Cost).
		SetNillableTokensInput(p.TokensInput).
		SetNillableTokensOutput(p.TokensOutput).
		SetNillableTokensReasoning(p.TokensReasoning)
	if p.ContentHash != "" {
		builder.SetContentHash(p.ContentHash)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return false, nil // duplicate source_hash — idempotency contract
		}
		return false, fmt.Errorf("failed to write punch: %w", err)
	}
	return true, nil
}

// ListForTask returns a task's punches in observation order.
func (s *PunchService) ListForTask(ctx context.Context, taskID string) ([]*ent.Punch, error) {
	if s.client == nil {
		return nil, ErrNotConnected
	}
	punches, err := s.client.Punch.Query().
		Where(punch.TaskIDEQ(taskID)).
		Order(ent.Asc(punch.FieldObservedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	return punches, nil
}

// CountMatching counts a task's punches of the given type whose key matches
// the SQL LIKE pattern (with % wildcards).
func (s *PunchService) CountMatching(ctx context.Context, taskID string, punchType models.PunchType, keyPattern string) (int, error) {
	if s.client == nil {
		return 0, ErrNotConnected
	}
	count, err := s.client.Punch.Query().
		Where(
			punch.TaskIDEQ(taskID),
			punch.PunchTypeEQ(punch.PunchType(punchType)),
			likeKey(keyPattern),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count punches: %w", err)
	}
	return count, nil
}

// CountKeysIn counts a task's punches of the given type whose key is one of keys.
func (s *PunchService) CountKeysIn(ctx context.Context, taskID string, punchType models.PunchType, keys []string) (int, error) {
	if s.client == nil {
		return 0, ErrNotConnected
	}
	count, err := s.client.Punch.Query().
		Where(
			punch.TaskIDEQ(taskID),
			punch.PunchTypeEQ(punch.PunchType(punchType)),
			punch.PunchKeyIn(keys...),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count punches: %w", err)
	}
	return count, nil
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/punchd-io/punchd/ent"
	"github.com/punchd-io/punchd/ent/childrelation"
	"github.com/punchd-io/punchd/ent/punch"
)

// childSpawnPrefix marks lifecycle/workflow punches that announce a spawned
// child session: punch_key = "child_spawned:<child_id>", task_id = parent.
const childSpawnPrefix = "child_spawned:"

// ChildSpawnKey returns the punch key announcing a spawned child session.
func ChildSpawnKey(childID string) string {
	return childSpawnPrefix + childID
}

// ChildRelationService persists parent→child session edges.
type ChildRelationService struct {
	client *ent.Client
}

// NewChildRelationService creates a new ChildRelationService
func NewChildRelationService(client *ent.Client) *ChildRelationService {
	return &ChildRelationService{client: client}
}

// WriteChildRelation inserts the parent→child edge unless it already exists.
// Returns true when inserted.
func (s *ChildRelationService) WriteChildRelation(httpCtx context.Context, parentID, childID string) (bool, error) {
	if s.client == nil {
		return false, ErrNotConnected
	}
	if parentID == "" || childID == "" {
		return false, NewValidationError("parent_id/child_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.ChildRelation.Create().
		SetID(uuid.New().String()).
		SetParentID(parentID).
		SetChildID(childID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil // edge already recorded
		}
		return false, fmt.Errorf("failed to write child relation: %w", err)
	}
	return true, nil
}

// Children returns the child session ids of a parent.
func (s *ChildRelationService) Children(ctx context.Context, parentID string) ([]string, error) {
	if s.client == nil {
		return nil, ErrNotConnected
	}
	rels, err := s.client.ChildRelation.Query().
		Where(childrelation.ParentIDEQ(parentID)).
		Order(ent.Asc(childrelation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query child relations: %w", err)
	}
	children := make([]string, 0, len(rels))
	for _, rel := range rels {
		children = append(children, rel.ChildID)
	}
	return children, nil
}

// SyncFromPunches scans lifecycle and workflow punches announcing child
// spawns and inserts any missing parent→child edges. Returns the number of
// edges inserted. Safe to re-run; duplicates are swallowed row by row.
func (s *ChildRelationService) SyncFromPunches(ctx context.Context) (int, error) {
	if s.client == nil {
		return 0, ErrNotConnected
	}

	punches, err := s.client.Punch.Query().
		Where(
			punch.PunchTypeIn(punch.PunchTypeSessionLifecycle, punch.PunchTypeWorkflow),
			punch.PunchKeyHasPrefix(childSpawnPrefix),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to scan spawn punches: %w", err)
	}

	inserted := 0
	for _, p := range punches {
		childID := strings.TrimPrefix(p.PunchKey, childSpawnPrefix)
		if childID == "" || p.TaskID == "" {
			continue
		}
		ok, err := s.WriteChildRelation(ctx, p.TaskID, childID)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

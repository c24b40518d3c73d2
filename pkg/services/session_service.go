package services

import (
	"context"
	"fmt"
	"time"

	"github.com/punchd-io/punchd/ent"
	"github.com/punchd-io/punchd/ent/agentsession"
	"github.com/punchd-io/punchd/ent/punch"
	"github.com/punchd-io/punchd/pkg/models"
)

// SessionService manages agent session rows.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// Upsert creates the session row or overwrites its mutable fields
// (status, cost, tokens, completed_at, outcome). Keyed by session id.
func (s *SessionService) Upsert(httpCtx context.Context, req models.UpsertSessionRequest) (*ent.AgentSession, error) {
	if s.client == nil {
		return nil, ErrNotConnected
	}
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.AgentSession.Query().
		Where(agentsession.IDEQ(req.SessionID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		return s.create(ctx, req)
	case err != nil:
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	update := existing.Update()
	if req.TaskID != "" {
		update.SetTaskID(req.TaskID)
	}
	if req.Mode != "" {
		update.SetMode(req.Mode)
	}
	if req.Model != "" {
		update.SetModel(req.Model)
	}
	if req.Status != "" {
		update.SetStatus(agentsession.Status(req.Status))
	}
	if req.TotalCost != nil {
		update.SetTotalCost(*req.TotalCost)
	}
	if req.TokensIn != nil {
		update.SetTokensIn(*req.TokensIn)
	}
	if req.TokensOut != nil {
		update.SetTokensOut(*req.TokensOut)
	}
	if req.TokensReasoning != nil {
		update.SetTokensReasoning(*req.TokensReasoning)
	}
	if req.CompletedAt != nil {
		update.SetCompletedAt(*req.CompletedAt)
	}
	if req.Outcome != "" {
		update.SetOutcome(req.Outcome)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return updated, nil
}

func (s *SessionService) create(ctx context.Context, req models.UpsertSessionRequest) (*ent.AgentSession, error) {
	builder := s.client.AgentSession.Create().
		SetID(req.SessionID).
		SetTaskID(req.TaskID).
		SetMode(req.Mode).
		SetModel(req.Model)
	if req.Status != "" {
		builder.SetStatus(agentsession.Status(req.Status))
	}
	if req.TotalCost != nil {
		builder.SetTotalCost(*req.TotalCost)
	}
	if req.TokensIn != nil {
		builder.SetTokensIn(*req.TokensIn)
	}
	if req.TokensOut != nil {
		builder.SetTokensOut(*req.TokensOut)
	}
	if req.TokensReasoning != nil {
		builder.SetTokensReasoning(*req.TokensReasoning)
	}
	if req.StartedAt != nil {
		builder.SetStartedAt(*req.StartedAt)
	}
	if req.CompletedAt != nil {
		builder.SetCompletedAt(*req.CompletedAt)
	}
	if req.Outcome != "" {
		builder.SetOutcome(req.Outcome)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		// Concurrent writer got there first — retry as an update.
		if ent.IsConstraintError(err) {
			return s.Upsert(ctx, req)
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

// Get returns a session row by id.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*ent.AgentSession, error) {
	if s.client == nil {
		return nil, ErrNotConnected
	}
	session, err := s.client.AgentSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// List returns sessions ordered by start time descending.
func (s *SessionService) List(ctx context.Context, limit, offset int) ([]*ent.AgentSession, error) {
	if s.client == nil {
		return nil, ErrNotConnected
	}
	if limit <= 0 {
		limit = 50
	}
	sessions, err := s.client.AgentSession.Query().
		Order(ent.Desc(agentsession.FieldStartedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Snapshot aggregates a session's persisted punch activity: punch counts by
// type, cost and token totals, and the latest observation time.
func (s *SessionService) Snapshot(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	if s.client == nil {
		return nil, ErrNotConnected
	}

	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	punches, err := s.client.Punch.Query().
		Where(punch.TaskIDEQ(sessionID)).
		Order(ent.Asc(punch.FieldObservedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}

	snap := &models.SessionSnapshot{
		SessionID:       sessionID,
		Status:          string(session.Status),
		PunchCounts:     make(map[string]int),
		TokensIn:        session.TokensIn,
		TokensOut:       session.TokensOut,
		TokensReasoning: session.TokensReasoning,
	}
	for _, p := range punches {
		snap.PunchCounts[string(p.PunchType)]++
		if p.Cost != nil {
			snap.TotalCost += *p.Cost
		}
		observed := p.ObservedAt
		snap.LastObservedAt = &observed
	}
	return snap, nil
}

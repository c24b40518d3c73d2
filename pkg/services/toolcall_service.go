package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/punchd-io/punchd/ent"
	"github.com/punchd-io/punchd/ent/toolcall"
	"github.com/punchd-io/punchd/pkg/models"
)

// ToolCallService persists session tool-call history.
type ToolCallService struct {
	client *ent.Client
}

// NewToolCallService creates a new ToolCallService
func NewToolCallService(client *ent.Client) *ToolCallService {
	return &ToolCallService{client: client}
}

// WriteToolCall inserts a tool-call row unless one with the same
// (session, ts, tool_name) already exists. Returns true when inserted.
func (s *ToolCallService) WriteToolCall(httpCtx context.Context, req models.WriteToolCallRequest) (bool, error) {
	if s.client == nil {
		return false, ErrNotConnected
	}
	if req.SessionID == "" {
		return false, NewValidationError("session_id", "required")
	}
	if req.ToolName == "" {
		return false, NewValidationError("tool_name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ToolCall.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetToolName(req.ToolName).
		SetArgsSummary(req.ArgsSummary).
		SetStatus(req.Status).
		SetTs(req.TS).
		SetNillableDurationMs(req.DurationMS).
		SetNillableCost(req.Cost)
	if req.Error != "" {
		builder.SetError(req.Error)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return false, nil // (session, ts, tool_name) already recorded
		}
		return false, fmt.Errorf("failed to write tool call: %w", err)
	}
	return true, nil
}

// ListForSession returns a session's tool calls in timestamp order.
func (s *ToolCallService) ListForSession(ctx context.Context, sessionID string) ([]*ent.ToolCall, error) {
	if s.client == nil {
		return nil, ErrNotConnected
	}
	calls, err := s.client.ToolCall.Query().
		Where(toolcall.SessionIDEQ(sessionID)).
		Order(ent.Asc(toolcall.FieldTs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool calls: %w", err)
	}
	return calls, nil
}

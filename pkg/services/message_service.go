package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/punchd-io/punchd/ent"
	"github.com/punchd-io/punchd/ent/sessionmessage"
	"github.com/punchd-io/punchd/pkg/models"
)

// maxPreviewLen bounds stored message previews.
const maxPreviewLen = 500

// MessageService persists session message history.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// WriteMessage inserts a message row unless one with the same
// (session, ts, role) already exists. Returns true when inserted.
func (s *MessageService) WriteMessage(httpCtx context.Context, req models.WriteMessageRequest) (bool, error) {
	if s.client == nil {
		return false, ErrNotConnected
	}
	if req.SessionID == "" {
		return false, NewValidationError("session_id", "required")
	}
	if req.Role == "" {
		return false, NewValidationError("role", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	preview := req.ContentPreview
	if len(preview) > maxPreviewLen {
		preview = preview[:maxPreviewLen]
	}

	_, err := s.client.SessionMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetRole(req.Role).
		SetContentType(req.ContentType).
		SetContentPreview(preview).
		SetTs(req.TS).
		SetNillableCost(req.Cost).
		SetNillableTokensIn(req.TokensIn).
		SetNillableTokensOut(req.TokensOut).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil // (session, ts, role) already recorded
		}
		return false, fmt.Errorf("failed to write message: %w", err)
	}
	return true, nil
}

// ListForSession returns a session's messages in timestamp order.
func (s *MessageService) ListForSession(ctx context.Context, sessionID string) ([]*ent.SessionMessage, error) {
	if s.client == nil {
		return nil, ErrNotConnected
	}
	messages, err := s.client.SessionMessage.Query().
		Where(sessionmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(sessionmessage.FieldTs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

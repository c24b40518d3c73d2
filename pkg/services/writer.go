package services

import (
	"context"

	"github.com/punchd-io/punchd/ent"
	"github.com/punchd-io/punchd/pkg/models"
)

// Writer bundles the persistence services behind a single facade. Every
// write is idempotent: duplicate punches, messages, tool calls, and child
// relations are silently swallowed via unique-constraint collisions.
type Writer struct {
	Punches   *PunchService
	Sessions  *SessionService
	Messages  *MessageService
	ToolCalls *ToolCallService
	ChildRels *ChildRelationService
	Cards     *CardService
}

// NewWriter creates a Writer over the given ent client.
func NewWriter(client *ent.Client) *Writer {
	return &Writer{
		Punches:   NewPunchService(client),
		Sessions:  NewSessionService(client),
		Messages:  NewMessageService(client),
		ToolCalls: NewToolCallService(client),
		ChildRels: NewChildRelationService(client),
		Cards:     NewCardService(client),
	}
}

// WritePunch inserts a punch unless one with the same source hash exists.
func (w *Writer) WritePunch(ctx context.Context, p *models.Punch) (bool, error) {
	return w.Punches.WritePunch(ctx, p)
}

// UpsertSession writes the session row, overwriting mutable fields.
func (w *Writer) UpsertSession(ctx context.Context, req models.UpsertSessionRequest) error {
	_, err := w.Sessions.Upsert(ctx, req)
	return err
}

// WriteMessage inserts a message row if its (session, ts, role) key is new.
func (w *Writer) WriteMessage(ctx context.Context, req models.WriteMessageRequest) (bool, error) {
	return w.Messages.WriteMessage(ctx, req)
}

// WriteToolCall inserts a tool-call row if its (session, ts, tool) key is new.
func (w *Writer) WriteToolCall(ctx context.Context, req models.WriteToolCallRequest) (bool, error) {
	return w.ToolCalls.WriteToolCall(ctx, req)
}

// WriteChildRelation inserts a parent→child edge if it does not exist.
func (w *Writer) WriteChildRelation(ctx context.Context, parentID, childID string) (bool, error) {
	return w.ChildRels.WriteChildRelation(ctx, parentID, childID)
}

// SyncChildRelations backfills edges from child-spawn punches.
func (w *Writer) SyncChildRelations(ctx context.Context) (int, error) {
	return w.ChildRels.SyncFromPunches(ctx)
}

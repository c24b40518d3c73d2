package daemon

import (
	"context"
	"fmt"
	"time"

	"github.com/punchd-io/punchd/pkg/host"
	"github.com/punchd-io/punchd/pkg/models"
)

// catchUp replays recent host activity through the same classify-and-write
// path as live ingestion. Because every write is idempotent, re-running
// catch-up after a crash or reconnect is safe.
func (d *Daemon) catchUp(ctx context.Context) error {
	sessions, err := d.host.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("listing host sessions: %w", err)
	}

	cutoff := time.Now().Add(-d.config.CatchUpWindow)
	replayed := 0
	for _, s := range sessions {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if s.UpdatedAt.Before(cutoff) {
			continue
		}
		if err := d.replaySession(ctx, s); err != nil {
			d.logger.Warn("Session replay failed", "session_id", s.ID, "error", err)
			continue
		}
		replayed++
	}

	if n, err := d.store.SyncChildRelations(ctx); err != nil {
		d.logger.Warn("Child relation sync failed", "error", err)
	} else if n > 0 {
		d.logger.Info("Backfilled child relations", "inserted", n)
	}

	d.logger.Info("Catch-up complete", "sessions_replayed", replayed)
	return nil
}

// replaySession feeds one session's lifecycle and message history through
// handleEvent as synthesized events.
func (d *Daemon) replaySession(ctx context.Context, s host.SessionInfo) error {
	info := map[string]any{"id": s.ID, "status": s.Status}

	created := models.HostEvent{
		Type:       models.EventSessionCreated,
		Properties: map[string]any{"info": info},
	}
	if err := d.handleEvent(ctx, created); err != nil {
		return err
	}

	updated := models.HostEvent{
		Type:       models.EventSessionUpdated,
		Properties: map[string]any{"info": info},
	}
	if err := d.handleEvent(ctx, updated); err != nil {
		return err
	}

	entries, err := d.host.ListMessages(ctx, s.ID)
	if err != nil {
		d.logger.Warn("Message history fetch failed during replay",
			"session_id", s.ID, "error", err)
		return nil
	}
	for _, entry := range entries {
		for _, raw := range host.RawParts(entry) {
			if _, ok := raw["sessionID"]; !ok {
				raw["sessionID"] = s.ID
			}
			ev := models.HostEvent{
				Type:       models.EventMessagePartUpdated,
				Properties: map[string]any{"part": raw},
			}
			if err := d.handleEvent(ctx, ev); err != nil {
				return err
			}
		}
	}

	children, err := d.host.ListChildren(ctx, s.ID)
	if err != nil {
		d.logger.Warn("Child listing failed during replay",
			"session_id", s.ID, "error", err)
		return nil
	}
	for _, childID := range children {
		if _, err := d.store.WriteChildRelation(ctx, s.ID, childID); err != nil {
			return fmt.Errorf("recording child %s: %w", childID, err)
		}
		if err := d.writeChildSpawnPunch(ctx, s.ID, childID); err != nil {
			return fmt.Errorf("recording child spawn punch for %s: %w", childID, err)
		}
	}
	return nil
}

// Package cleanup enforces data retention on the observation store.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/punchd-io/punchd/ent"
	"github.com/punchd-io/punchd/ent/agentsession"
	"github.com/punchd-io/punchd/ent/childrelation"
	"github.com/punchd-io/punchd/ent/punch"
	"github.com/punchd-io/punchd/ent/sessionmessage"
	"github.com/punchd-io/punchd/ent/toolcall"
)

// Config controls the retention loop.
type Config struct {
	Enabled bool
	// SessionRetentionDays bounds how long terminal sessions and their
	// punch record are kept.
	SessionRetentionDays int
	// DetailTTL bounds message and tool-call history, which grows much
	// faster than the punch record.
	DetailTTL time.Duration
	Interval  time.Duration
}

// DefaultConfig returns the stock retention policy.
func DefaultConfig() Config {
	return Config{
		Enabled:              true,
		SessionRetentionDays: 90,
		DetailTTL:            14 * 24 * time.Hour,
		Interval:             6 * time.Hour,
	}
}

// Service periodically removes expired observation data:
//   - terminal sessions past the retention window, with their punches
//   - message and tool-call history past its TTL
//
// All deletes are idempotent and safe to run from multiple processes.
type Service struct {
	client *ent.Client
	config Config
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service over the ent client.
func NewService(client *ent.Client, config Config) *Service {
	return &Service{
		client: client,
		config: config,
		logger: slog.Default(),
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Retention service started",
		"session_retention_days", s.config.SessionRetentionDays,
		"detail_ttl", s.config.DetailTTL,
		"interval", s.config.Interval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	if count, err := s.PruneSessions(ctx); err != nil {
		s.logger.Error("Retention: session prune failed", "error", err)
	} else if count > 0 {
		s.logger.Info("Retention: pruned expired sessions", "count", count)
	}

	if count, err := s.PruneDetailRows(ctx); err != nil {
		s.logger.Error("Retention: detail prune failed", "error", err)
	} else if count > 0 {
		s.logger.Info("Retention: pruned expired detail rows", "count", count)
	}
}

// PruneSessions removes terminal sessions completed before the retention
// cutoff, along with their punches, messages, and tool calls. Returns the
// number of session rows removed.
func (s *Service) PruneSessions(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.config.SessionRetentionDays)

	expired, err := s.client.AgentSession.Query().
		Where(
			agentsession.StatusIn(agentsession.StatusCompleted, agentsession.StatusFailed),
			agentsession.CompletedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired sessions: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	if _, err := s.client.Punch.Delete().
		Where(punch.TaskIDIn(expired...)).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to prune punches: %w", err)
	}
	if _, err := s.client.SessionMessage.Delete().
		Where(sessionmessage.SessionIDIn(expired...)).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to prune messages: %w", err)
	}
	if _, err := s.client.ToolCall.Delete().
		Where(toolcall.SessionIDIn(expired...)).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to prune tool calls: %w", err)
	}
	if _, err := s.client.ChildRelation.Delete().
		Where(childrelation.ParentIDIn(expired...)).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to prune child relations: %w", err)
	}

	count, err := s.client.AgentSession.Delete().
		Where(agentsession.IDIn(expired...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	return count, nil
}

// PruneDetailRows removes message and tool-call history older than the
// detail TTL regardless of session state. Punches are untouched: they are
// the durable record the detail rows merely annotate.
func (s *Service) PruneDetailRows(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-s.config.DetailTTL)

	messages, err := s.client.SessionMessage.Delete().
		Where(sessionmessage.TsLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune messages: %w", err)
	}
	calls, err := s.client.ToolCall.Delete().
		Where(toolcall.TsLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return messages, fmt.Errorf("failed to prune tool calls: %w", err)
	}
	return messages + calls, nil
}

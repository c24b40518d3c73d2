package governor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/punchd-io/punchd/pkg/classify"
	"github.com/punchd-io/punchd/pkg/models"
)

// SessionAborter is the slice of the agent-host client the killer needs.
type SessionAborter interface {
	Abort(ctx context.Context, sessionID string) (alreadyDead bool, err error)
}

// PunchWriter records the governor_kill punch. Optional: a nil writer skips
// the record but never blocks the kill.
type PunchWriter interface {
	WritePunch(ctx context.Context, p *models.Punch) (bool, error)
}

// Killer aborts runaway sessions on the agent host and records the decision.
type Killer struct {
	aborter SessionAborter
	punches PunchWriter
	logger  *slog.Logger
}

// NewKiller creates a Killer. punches may be nil (kill without a record).
func NewKiller(aborter SessionAborter, punches PunchWriter) *Killer {
	return &Killer{
		aborter: aborter,
		punches: punches,
		logger:  slog.Default(),
	}
}

// Kill aborts the detected session. An already-terminated session is still a
// successful kill; exactly one governor_kill punch is recorded either way
// (the deterministic source hash dedupes retries). Writer failures are
// logged, not raised — the abort is the part that must not be lost.
func (k *Killer) Kill(ctx context.Context, detection models.LoopDetection) (models.KillConfirmation, error) {
	log := k.logger.With("session_id", detection.SessionID, "classification", detection.Classification)

	alreadyDead, err := k.aborter.Abort(ctx, detection.SessionID)
	if err != nil {
		return models.KillConfirmation{}, fmt.Errorf("abort session: %w", err)
	}

	trigger := detection
	if alreadyDead {
		trigger.Reason += " (session was already terminated)"
		log.Info("Kill target already terminated")
	} else {
		log.Warn("Session killed", "reason", detection.Reason)
	}

	confirmation := models.KillConfirmation{
		SessionID:    detection.SessionID,
		KilledAt:     time.Now(),
		Trigger:      trigger,
		FinalMetrics: detection.Metrics,
		AlreadyDead:  alreadyDead,
	}

	if k.punches != nil {
		if err := k.recordKillPunch(ctx, detection); err != nil {
			log.Error("Failed to record governor_kill punch", "error", err)
		}
	}

	return confirmation, nil
}

func (k *Killer) recordKillPunch(ctx context.Context, detection models.LoopDetection) error {
	cost := detection.Metrics.TotalCost
	punch := &models.Punch{
		TaskID:     detection.SessionID,
		PunchType:  models.PunchTypeGovernorKill,
		PunchKey:   string(detection.Classification),
		ObservedAt: time.Now(),
		Cost:       &cost,
		SourceHash: classify.HashValue(map[string]any{
			"type":           "governor_kill",
			"session_id":     detection.SessionID,
			"classification": string(detection.Classification),
			"step_count":     detection.Metrics.StepCount,
			"total_cost":     detection.Metrics.TotalCost,
		}),
	}
	_, err := k.punches.WritePunch(ctx, punch)
	return err
}

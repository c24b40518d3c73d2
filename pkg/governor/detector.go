// Package governor watches punch streams for runaway sessions and drives the
// kill → diagnose → refit pipeline when one is found.
package governor

import (
	"fmt"
	"time"

	"github.com/punchd-io/punchd/pkg/models"
)

// DetectorConfig holds the loop-detection thresholds.
type DetectorConfig struct {
	MaxSteps          int
	MaxCostUSD        float64
	MinCycleLength    int
	MaxCycleLength    int
	CycleRepetitions  int
	CacheWindowSize   int
	CachePlateauRatio float64
}

// DefaultDetectorConfig returns the stock thresholds.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		MaxSteps:          100,
		MaxCostUSD:        10.0,
		MinCycleLength:    2,
		MaxCycleLength:    6,
		CycleRepetitions:  3,
		CacheWindowSize:   20,
		CachePlateauRatio: 0.3,
	}
}

// LoopDetector is a per-session analyzer over the session's punch stream.
// It is pure and deterministic: identical punch sequences produce identical
// detections. The ingesting goroutine exclusively owns an instance.
type LoopDetector struct {
	sessionID string
	config    DetectorConfig

	stepCount     int
	toolCallCount int
	observed      int
	toolHistory   []string
	hashes        []string
	totalCost     float64
}

// NewLoopDetector creates a detector for one session.
func NewLoopDetector(sessionID string, config DetectorConfig) *LoopDetector {
	return &LoopDetector{
		sessionID: sessionID,
		config:    config,
	}
}

// Ingest folds one punch into the detector state.
func (d *LoopDetector) Ingest(p models.Punch) {
	switch p.PunchType {
	case models.PunchTypeStepComplete:
		// Only finished steps count toward the overflow budget; observing a
		// step start is not progress.
		if p.PunchKey == "step_finished" {
			d.stepCount++
		}
	case models.PunchTypeToolCall:
		d.toolCallCount++
		d.toolHistory = append(d.toolHistory, p.PunchKey)
	}
	// The cycle heuristic only ever looks at the trailing
	// MaxCycleLength*CycleRepetitions calls.
	d.toolHistory = trimTail(d.toolHistory, d.config.MaxCycleLength*d.config.CycleRepetitions)

	hash := p.ContentHash
	if hash == "" {
		hash = p.SourceHash
	}
	d.hashes = append(d.hashes, hash)
	d.hashes = trimTail(d.hashes, d.config.CacheWindowSize)
	d.observed++

	if p.Cost != nil {
		d.totalCost += *p.Cost
	}
}

// trimTail keeps at most max trailing entries, reallocating so the dropped
// prefix does not stay reachable through the slice's backing array.
func trimTail(s []string, max int) []string {
	if max <= 0 || len(s) <= max {
		return s
	}
	trimmed := make([]string, max)
	copy(trimmed, s[len(s)-max:])
	return trimmed
}

// Metrics returns a snapshot of the detector state. UniqueHashes counts
// distinct content over the trailing cache window, not the whole session.
func (d *LoopDetector) Metrics() models.SessionMetrics {
	return models.SessionMetrics{
		StepCount:     d.stepCount,
		ToolCallCount: d.toolCallCount,
		TotalCost:     d.totalCost,
		UniqueHashes:  distinctCount(d.hashes),
		HistoryLength: d.observed,
	}
}

// Detect evaluates the heuristics in priority order and returns the first
// match, or nil when the session looks healthy. Cost beats steps beats
// cycles beats plateau.
func (d *LoopDetector) Detect() *models.LoopDetection {
	if d.totalCost > d.config.MaxCostUSD {
		return d.detection(models.LoopCostOverflow,
			fmt.Sprintf("total cost $%.2f exceeded budget $%.2f", d.totalCost, d.config.MaxCostUSD))
	}
	if d.stepCount > d.config.MaxSteps {
		return d.detection(models.LoopStepOverflow,
			fmt.Sprintf("step count %d exceeded limit %d", d.stepCount, d.config.MaxSteps))
	}
	if length := d.findToolCycle(); length > 0 {
		pattern := d.toolHistory[len(d.toolHistory)-length:]
		return d.detection(models.LoopToolCycle,
			fmt.Sprintf("tool pattern %v repeated %d times", pattern, d.config.CycleRepetitions))
	}
	if ratio, ok := d.cachePlateauRatio(); ok && ratio < d.config.CachePlateauRatio {
		return d.detection(models.LoopCachePlateau,
			fmt.Sprintf("only %.0f%% distinct content in last %d observations", ratio*100, d.config.CacheWindowSize))
	}
	return nil
}

func (d *LoopDetector) detection(class models.LoopClassification, reason string) *models.LoopDetection {
	return &models.LoopDetection{
		SessionID:      d.sessionID,
		Classification: class,
		Reason:         reason,
		Metrics:        d.Metrics(),
		DetectedAt:     time.Now(),
	}
}

// findToolCycle looks for a trailing pattern of length L (within the
// configured bounds) repeated exactly CycleRepetitions times at the end of
// the tool history. Returns the cycle length, or 0.
func (d *LoopDetector) findToolCycle() int {
	for length := d.config.MinCycleLength; length <= d.config.MaxCycleLength; length++ {
		span := length * d.config.CycleRepetitions
		if len(d.toolHistory) < span {
			continue
		}
		tail := d.toolHistory[len(d.toolHistory)-span:]
		if isRepeatedRun(tail, length) {
			return length
		}
	}
	return 0
}

// isRepeatedRun reports whether tail decomposes into identical runs of the
// given length.
func isRepeatedRun(tail []string, length int) bool {
	for i := length; i < len(tail); i++ {
		if tail[i] != tail[i%length] {
			return false
		}
	}
	return true
}

// cachePlateauRatio returns the distinct-hash ratio over the trailing cache
// window, and whether the window is full.
func (d *LoopDetector) cachePlateauRatio() (float64, bool) {
	window := d.config.CacheWindowSize
	if len(d.hashes) < window {
		return 0, false
	}
	tail := d.hashes[len(d.hashes)-window:]
	return float64(distinctCount(tail)) / float64(window), true
}

func distinctCount(hashes []string) int {
	seen := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		seen[h] = struct{}{}
	}
	return len(seen)
}

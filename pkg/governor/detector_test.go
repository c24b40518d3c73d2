package governor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/models"
)

func stepPunch(key string) models.Punch {
	return models.Punch{
		TaskID:     "s1",
		PunchType:  models.PunchTypeStepComplete,
		PunchKey:   key,
		SourceHash: fmt.Sprintf("step-%s-%d", key, stepSeq()),
	}
}

var seq int

func stepSeq() int {
	seq++
	return seq
}

func toolPunch(tool, hash string) models.Punch {
	return models.Punch{
		TaskID:      "s1",
		PunchType:   models.PunchTypeToolCall,
		PunchKey:    tool,
		SourceHash:  "src-" + hash,
		ContentHash: hash,
	}
}

func costPunch(cost float64) models.Punch {
	p := toolPunch("bash", fmt.Sprintf("cost-%d", stepSeq()))
	p.Cost = &cost
	return p
}

func TestLoopDetector_StepOverflow(t *testing.T) {
	cfg := DefaultDetectorConfig()
	cfg.MaxSteps = 10
	det := NewLoopDetector("s1", cfg)

	for i := 0; i < 12; i++ {
		det.Ingest(stepPunch("step_finished"))
	}

	detection := det.Detect()
	require.NotNil(t, detection)
	assert.Equal(t, models.LoopStepOverflow, detection.Classification)
	assert.Equal(t, "s1", detection.SessionID)
	assert.Equal(t, 12, detection.Metrics.StepCount)
}

func TestLoopDetector_StepStartsDoNotCount(t *testing.T) {
	cfg := DefaultDetectorConfig()
	cfg.MaxSteps = 5
	det := NewLoopDetector("s1", cfg)

	for i := 0; i < 20; i++ {
		det.Ingest(stepPunch("step_start_observed"))
	}
	assert.Nil(t, det.Detect())
	assert.Equal(t, 0, det.Metrics().StepCount)
}

func TestLoopDetector_CostOverflow(t *testing.T) {
	cfg := DefaultDetectorConfig()
	cfg.MaxCostUSD = 1.0
	det := NewLoopDetector("s1", cfg)

	det.Ingest(costPunch(0.6))
	assert.Nil(t, det.Detect())
	det.Ingest(costPunch(0.6))

	detection := det.Detect()
	require.NotNil(t, detection)
	assert.Equal(t, models.LoopCostOverflow, detection.Classification)
	assert.InDelta(t, 1.2, detection.Metrics.TotalCost, 1e-9)
}

func TestLoopDetector_ToolCycle(t *testing.T) {
	det := NewLoopDetector("s1", DefaultDetectorConfig())

	// edit → test repeated three times: cycle length 2, repetitions 3.
	for i := 0; i < 3; i++ {
		det.Ingest(toolPunch("edit", fmt.Sprintf("e%d", i)))
		det.Ingest(toolPunch("test", fmt.Sprintf("t%d", i)))
	}

	detection := det.Detect()
	require.NotNil(t, detection)
	assert.Equal(t, models.LoopToolCycle, detection.Classification)
}

func TestLoopDetector_NoCycleOnVariedTools(t *testing.T) {
	det := NewLoopDetector("s1", DefaultDetectorConfig())
	tools := []string{"read", "edit", "test", "bash", "grep", "write", "read", "lint"}
	for i, tool := range tools {
		det.Ingest(toolPunch(tool, fmt.Sprintf("h%d", i)))
	}
	assert.Nil(t, det.Detect())
}

func TestLoopDetector_CachePlateau(t *testing.T) {
	cfg := DefaultDetectorConfig()
	det := NewLoopDetector("s1", cfg)

	// 20 observations of only 2 distinct content hashes: ratio 0.1 < 0.3.
	// Vary the tool name so no tool cycle fires first.
	tools := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i := 0; i < cfg.CacheWindowSize; i++ {
		det.Ingest(toolPunch(tools[i%len(tools)], fmt.Sprintf("hash-%d", i%2)))
	}

	detection := det.Detect()
	require.NotNil(t, detection)
	assert.Equal(t, models.LoopCachePlateau, detection.Classification)
}

func TestLoopDetector_CachePlateauNeedsFullWindow(t *testing.T) {
	cfg := DefaultDetectorConfig()
	det := NewLoopDetector("s1", cfg)
	tools := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i := 0; i < cfg.CacheWindowSize-1; i++ {
		det.Ingest(toolPunch(tools[i%len(tools)], "same"))
	}
	assert.Nil(t, det.Detect())
}

func TestLoopDetector_Priority(t *testing.T) {
	// Both cost overflow and a tool cycle hold; cost wins.
	cfg := DefaultDetectorConfig()
	cfg.MaxCostUSD = 0.5
	det := NewLoopDetector("s1", cfg)

	for i := 0; i < 3; i++ {
		a := toolPunch("edit", fmt.Sprintf("e%d", i))
		cost := 0.3
		a.Cost = &cost
		det.Ingest(a)
		det.Ingest(toolPunch("test", fmt.Sprintf("t%d", i)))
	}

	detection := det.Detect()
	require.NotNil(t, detection)
	assert.Equal(t, models.LoopCostOverflow, detection.Classification)
}

func TestLoopDetector_Purity(t *testing.T) {
	// Two detectors fed the same sequence agree modulo DetectedAt.
	feed := func(det *LoopDetector) {
		for i := 0; i < 3; i++ {
			det.Ingest(toolPunch("edit", "h1"))
			det.Ingest(toolPunch("test", "h2"))
		}
	}
	d1 := NewLoopDetector("s1", DefaultDetectorConfig())
	d2 := NewLoopDetector("s1", DefaultDetectorConfig())
	feed(d1)
	feed(d2)

	det1 := d1.Detect()
	det2 := d2.Detect()
	require.NotNil(t, det1)
	require.NotNil(t, det2)
	det1.DetectedAt = det2.DetectedAt
	assert.Equal(t, det1, det2)
}

func TestLoopDetector_HashFallback(t *testing.T) {
	det := NewLoopDetector("s1", DefaultDetectorConfig())
	p := toolPunch("bash", "")
	p.SourceHash = "only-source"
	det.Ingest(p)
	assert.Equal(t, 1, det.Metrics().UniqueHashes)
}

func TestLoopDetector_BoundedHistory(t *testing.T) {
	cfg := DefaultDetectorConfig()
	det := NewLoopDetector("s1", cfg)

	for i := 0; i < 500; i++ {
		det.Ingest(toolPunch(fmt.Sprintf("tool-%d", i), fmt.Sprintf("h%d", i)))
	}

	// The buffers stay at the heuristics' lookback even after 500 punches.
	assert.Len(t, det.hashes, cfg.CacheWindowSize)
	assert.Len(t, det.toolHistory, cfg.MaxCycleLength*cfg.CycleRepetitions)
	assert.Equal(t, 500, det.Metrics().HistoryLength)
	assert.Equal(t, 500, det.Metrics().ToolCallCount)
	assert.Equal(t, cfg.CacheWindowSize, det.Metrics().UniqueHashes)
}

func TestLoopDetector_HealthySession(t *testing.T) {
	det := NewLoopDetector("s1", DefaultDetectorConfig())
	det.Ingest(stepPunch("step_finished"))
	det.Ingest(toolPunch("read", "h1"))
	det.Ingest(toolPunch("edit", "h2"))
	det.Ingest(stepPunch("step_finished"))
	assert.Nil(t, det.Detect())
}

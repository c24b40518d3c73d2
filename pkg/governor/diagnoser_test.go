package governor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/models"
)

type fakeHistory struct {
	entries []map[string]any
	err     error
}

func (f *fakeHistory) ListMessages(_ context.Context, _ string) ([]map[string]any, error) {
	return f.entries, f.err
}

func flatToolPart(tool, status string) map[string]any {
	return map[string]any{
		"type":  "tool",
		"tool":  tool,
		"state": map[string]any{"status": status},
	}
}

func flatToolError(tool, errMsg string) map[string]any {
	return map[string]any{
		"type":  "tool",
		"tool":  tool,
		"state": map[string]any{"status": "error", "error": errMsg},
	}
}

func textPart(content string) map[string]any {
	return map[string]any{"type": "text", "content": content}
}

func killFor(class models.LoopClassification) models.KillConfirmation {
	return models.KillConfirmation{
		SessionID: "s1",
		Trigger: models.LoopDetection{
			SessionID:      "s1",
			Classification: class,
		},
	}
}

func TestDiagnoser_InfiniteRetry(t *testing.T) {
	// 6 parts, the last 5 all failing bash calls: trailing streak rule fires.
	history := &fakeHistory{entries: []map[string]any{
		textPart("let me try running the tests"),
		flatToolError("bash", "exit status 1"),
		flatToolError("bash", "exit status 1"),
		flatToolError("bash", "exit status 1"),
		flatToolError("bash", "exit status 1"),
		flatToolError("bash", "exit status 1"),
	}}
	d := NewDiagnoser(history)

	report := d.Diagnose(context.Background(), killFor(models.LoopToolCycle))
	assert.Equal(t, models.DiagnosisInfiniteRetry, report.Diagnosis.Category)
	assert.GreaterOrEqual(t, report.Diagnosis.Confidence, 0.80)
	assert.Contains(t, report.Diagnosis.Summary, "bash")

	require.Len(t, report.ToolPatterns, 1)
	assert.Equal(t, "bash", report.ToolPatterns[0].Tool)
	assert.Equal(t, 5, report.ToolPatterns[0].Count)
	assert.Equal(t, 5, report.ToolPatterns[0].ErrorCount)
	assert.Equal(t, "error", report.ToolPatterns[0].LastStatus)
}

func TestDiagnoser_InfiniteRetryWithoutStreak(t *testing.T) {
	// bash fails half its calls but the history does not end on an error
	// streak: the lower-confidence ratio rule applies.
	history := &fakeHistory{entries: []map[string]any{
		flatToolError("bash", "exit status 1"),
		flatToolPart("bash", "completed"),
		flatToolError("bash", "exit status 1"),
		flatToolPart("bash", "completed"),
		flatToolError("bash", "exit status 1"),
		flatToolPart("read", "completed"),
	}}
	d := NewDiagnoser(history)

	report := d.Diagnose(context.Background(), killFor(models.LoopToolCycle))
	assert.Equal(t, models.DiagnosisInfiniteRetry, report.Diagnosis.Category)
	assert.InDelta(t, 0.60, report.Diagnosis.Confidence, 1e-9)
}

func TestDiagnoser_StuckOnApproval(t *testing.T) {
	t.Run("all-text tail", func(t *testing.T) {
		var entries []map[string]any
		for i := 0; i < 8; i++ {
			entries = append(entries, textPart("I have outlined the plan above"))
		}
		d := NewDiagnoser(&fakeHistory{entries: entries})

		report := d.Diagnose(context.Background(), killFor(models.LoopToolCycle))
		assert.Equal(t, models.DiagnosisStuckOnApproval, report.Diagnosis.Category)
		assert.InDelta(t, 0.75, report.Diagnosis.Confidence, 1e-9)
	})

	t.Run("approval keywords with little tool use", func(t *testing.T) {
		entries := []map[string]any{
			flatToolPart("read", "completed"),
			textPart("Should I proceed with deleting these files?"),
			textPart("Please confirm before I continue"),
		}
		d := NewDiagnoser(&fakeHistory{entries: entries})

		report := d.Diagnose(context.Background(), killFor(models.LoopToolCycle))
		assert.Equal(t, models.DiagnosisStuckOnApproval, report.Diagnosis.Category)
		assert.InDelta(t, 0.65, report.Diagnosis.Confidence, 1e-9)
	})
}

func TestDiagnoser_ContextExhaustion(t *testing.T) {
	t.Run("cache plateau kill trigger dominates", func(t *testing.T) {
		d := NewDiagnoser(&fakeHistory{})
		report := d.Diagnose(context.Background(), killFor(models.LoopCachePlateau))
		assert.Equal(t, models.DiagnosisContextExhaustion, report.Diagnosis.Category)
		assert.InDelta(t, 0.90, report.Diagnosis.Confidence, 1e-9)
	})

	t.Run("read-heavy history", func(t *testing.T) {
		var entries []map[string]any
		for i := 0; i < 11; i++ {
			entries = append(entries, flatToolPart("read", "completed"))
		}
		entries = append(entries, flatToolPart("bash", "completed"))
		d := NewDiagnoser(&fakeHistory{entries: entries})

		report := d.Diagnose(context.Background(), killFor(models.LoopStepOverflow))
		assert.Equal(t, models.DiagnosisContextExhaustion, report.Diagnosis.Category)
		assert.InDelta(t, 0.70, report.Diagnosis.Confidence, 1e-9)
	})
}

func TestDiagnoser_ScopeCreep(t *testing.T) {
	var entries []map[string]any
	for i := 0; i < 16; i++ {
		entries = append(entries, flatToolPart("edit", "completed"))
	}
	// Break up the trailing window so stuck_on_approval's text rule and the
	// tool-cycle flip-flop scan stay quiet.
	d := NewDiagnoser(&fakeHistory{entries: entries})

	report := d.Diagnose(context.Background(), killFor(models.LoopStepOverflow))
	assert.Equal(t, models.DiagnosisScopeCreep, report.Diagnosis.Category)
	assert.InDelta(t, 0.75, report.Diagnosis.Confidence, 1e-9)
}

func TestDiagnoser_ModelConfusion(t *testing.T) {
	entries := []map[string]any{
		flatToolPart("edit", "completed"),
		flatToolPart("undo", "completed"),
		flatToolPart("edit", "completed"),
		flatToolPart("revert", "completed"),
		flatToolPart("edit", "completed"),
	}
	d := NewDiagnoser(&fakeHistory{entries: entries})

	report := d.Diagnose(context.Background(), killFor(models.LoopToolCycle))
	assert.Equal(t, models.DiagnosisModelConfusion, report.Diagnosis.Category)
	assert.InDelta(t, 0.80, report.Diagnosis.Confidence, 1e-9)
}

func TestDiagnoser_Fallback(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		d := NewDiagnoser(&fakeHistory{})
		report := d.Diagnose(context.Background(), killFor(models.LoopStepOverflow))
		assert.Equal(t, models.DiagnosisModelConfusion, report.Diagnosis.Category)
		assert.InDelta(t, 0.30, report.Diagnosis.Confidence, 1e-9)
	})

	t.Run("history fetch failure degrades to fallback", func(t *testing.T) {
		d := NewDiagnoser(&fakeHistory{err: errors.New("host unreachable")})
		report := d.Diagnose(context.Background(), killFor(models.LoopStepOverflow))
		assert.Equal(t, models.DiagnosisModelConfusion, report.Diagnosis.Category)
		assert.InDelta(t, 0.30, report.Diagnosis.Confidence, 1e-9)
		assert.Equal(t, "s1", report.SessionID)
	})
}

func TestDiagnoser_MaxConfidenceSelection(t *testing.T) {
	// History satisfies both scope_creep (>15 edit-like calls, 0.75) and
	// infinite_retry's streak rule (0.85): the higher confidence wins.
	var entries []map[string]any
	for i := 0; i < 16; i++ {
		entries = append(entries, flatToolPart("write", "completed"))
	}
	entries = append(entries,
		flatToolError("bash", "boom"),
		flatToolError("bash", "boom"),
		flatToolError("bash", "boom"),
	)
	d := NewDiagnoser(&fakeHistory{entries: entries})

	report := d.Diagnose(context.Background(), killFor(models.LoopStepOverflow))
	assert.Equal(t, models.DiagnosisInfiniteRetry, report.Diagnosis.Category)
	assert.InDelta(t, 0.85, report.Diagnosis.Confidence, 1e-9)
}

func TestDiagnoser_NestedPartsShape(t *testing.T) {
	// The grouped message shape (entry with a "parts" array) must flatten
	// the same as the flat shape.
	entries := []map[string]any{
		{
			"info": map[string]any{"role": "assistant"},
			"parts": []any{
				flatToolError("bash", "exit status 1"),
				flatToolError("bash", "exit status 1"),
				flatToolError("bash", "exit status 1"),
			},
		},
	}
	d := NewDiagnoser(&fakeHistory{entries: entries})

	report := d.Diagnose(context.Background(), killFor(models.LoopToolCycle))
	assert.Equal(t, models.DiagnosisInfiniteRetry, report.Diagnosis.Category)
	require.Len(t, report.ToolPatterns, 1)
	assert.Equal(t, 3, report.ToolPatterns[0].Count)
}

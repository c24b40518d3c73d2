package governor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/models"
)

type fakeDispatcher struct {
	req  models.SessionRequest
	resp models.SessionResponse
	err  error
}

func (f *fakeDispatcher) CreateSession(_ context.Context, req models.SessionRequest) (models.SessionResponse, error) {
	f.req = req
	if f.err != nil {
		return models.SessionResponse{}, f.err
	}
	return f.resp, nil
}

func reportFor(category models.DiagnosisCategory) models.DiagnosisReport {
	return models.DiagnosisReport{
		SessionID: "s1",
		Diagnosis: models.Diagnosis{
			Category:        category,
			Confidence:      0.85,
			Summary:         "tool bash failed repeatedly",
			SuggestedAction: "fix the precondition first",
		},
		ToolPatterns: []models.ToolPattern{
			{Tool: "bash", Count: 12, ErrorCount: 9, LastStatus: "error"},
			{Tool: "read", Count: 3},
		},
	}
}

func TestFitter_Dispatch(t *testing.T) {
	t.Run("successful dispatch maps the response", func(t *testing.T) {
		dispatcher := &fakeDispatcher{resp: models.SessionResponse{
			SessionID:    "fit-1",
			Success:      true,
			Cost:         0.2,
			FilesChanged: []string{"main.go"},
			DurationMS:   1500,
		}}
		fitter := NewFitter(dispatcher, DefaultFitterConfig())

		result := fitter.Dispatch(context.Background(), reportFor(models.DiagnosisInfiniteRetry), nil)
		assert.True(t, result.Success)
		assert.Equal(t, "s1", result.OriginalSessionID)
		assert.Equal(t, "fit-1", result.FitterSessionID)
		assert.Equal(t, models.DiagnosisInfiniteRetry, result.Category)
		assert.Equal(t, []string{"main.go"}, result.FilesChanged)
	})

	t.Run("dispatcher failure becomes a failed result", func(t *testing.T) {
		dispatcher := &fakeDispatcher{err: errors.New("host refused")}
		fitter := NewFitter(dispatcher, DefaultFitterConfig())

		result := fitter.Dispatch(context.Background(), reportFor(models.DiagnosisScopeCreep), nil)
		assert.False(t, result.Success)
		assert.Equal(t, "host refused", result.Error)
		assert.Zero(t, result.Cost)
		assert.Empty(t, result.FitterSessionID)
	})
}

func TestFitter_RequestResolution(t *testing.T) {
	t.Run("auto-approve is always set", func(t *testing.T) {
		dispatcher := &fakeDispatcher{}
		fitter := NewFitter(dispatcher, DefaultFitterConfig())
		fitter.Dispatch(context.Background(), reportFor(models.DiagnosisStuckOnApproval), nil)
		assert.True(t, dispatcher.req.AutoApprove)
	})

	t.Run("agent mode defaults to code", func(t *testing.T) {
		dispatcher := &fakeDispatcher{}
		cfg := DefaultFitterConfig()
		cfg.AgentMode = ""
		fitter := NewFitter(dispatcher, cfg)
		fitter.Dispatch(context.Background(), reportFor(models.DiagnosisScopeCreep), nil)
		assert.Equal(t, "code", dispatcher.req.AgentMode)
	})

	t.Run("model override only for model_confusion", func(t *testing.T) {
		dispatcher := &fakeDispatcher{}
		fitter := NewFitter(dispatcher, DefaultFitterConfig())

		fitter.Dispatch(context.Background(), reportFor(models.DiagnosisModelConfusion), nil)
		assert.Equal(t, "openai/gpt-4o", dispatcher.req.Model)

		fitter.Dispatch(context.Background(), reportFor(models.DiagnosisInfiniteRetry), nil)
		assert.Empty(t, dispatcher.req.Model)
	})

	t.Run("token budget defaults to 100000", func(t *testing.T) {
		dispatcher := &fakeDispatcher{}
		cfg := DefaultFitterConfig()
		cfg.MaxTokenBudget = 0
		fitter := NewFitter(dispatcher, cfg)
		fitter.Dispatch(context.Background(), reportFor(models.DiagnosisScopeCreep), nil)
		assert.Equal(t, 100000, dispatcher.req.MaxTokenBudget)
	})
}

func TestFitter_TimeoutClamp(t *testing.T) {
	t.Run("scales with kill cost", func(t *testing.T) {
		dispatcher := &fakeDispatcher{}
		fitter := NewFitter(dispatcher, DefaultFitterConfig())

		kill := &models.KillConfirmation{
			FinalMetrics: models.SessionMetrics{TotalCost: 2.0},
		}
		fitter.Dispatch(context.Background(), reportFor(models.DiagnosisInfiniteRetry), kill)
		// 0.5 × $2.00 × 60000 ms/$ = 60000 ms.
		assert.Equal(t, 60000, dispatcher.req.TimeoutMS)
	})

	t.Run("clamps to minimum", func(t *testing.T) {
		dispatcher := &fakeDispatcher{}
		fitter := NewFitter(dispatcher, DefaultFitterConfig())

		kill := &models.KillConfirmation{
			FinalMetrics: models.SessionMetrics{TotalCost: 0.001},
		}
		fitter.Dispatch(context.Background(), reportFor(models.DiagnosisInfiniteRetry), kill)
		assert.Equal(t, 30000, dispatcher.req.TimeoutMS)
	})

	t.Run("clamps to maximum", func(t *testing.T) {
		dispatcher := &fakeDispatcher{}
		fitter := NewFitter(dispatcher, DefaultFitterConfig())

		kill := &models.KillConfirmation{
			FinalMetrics: models.SessionMetrics{TotalCost: 100},
		}
		fitter.Dispatch(context.Background(), reportFor(models.DiagnosisInfiniteRetry), kill)
		assert.Equal(t, 300000, dispatcher.req.TimeoutMS)
	})

	t.Run("falls back to tool volume without a kill", func(t *testing.T) {
		dispatcher := &fakeDispatcher{}
		fitter := NewFitter(dispatcher, DefaultFitterConfig())

		// 15 tool calls × 0.001 = 0.015, floored to 0.1 → 6000 ms → min 30000.
		fitter.Dispatch(context.Background(), reportFor(models.DiagnosisInfiniteRetry), nil)
		assert.Equal(t, 30000, dispatcher.req.TimeoutMS)
	})
}

func TestFitter_Prompt(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	fitter := NewFitter(dispatcher, DefaultFitterConfig())

	report := reportFor(models.DiagnosisInfiniteRetry)
	fitter.Dispatch(context.Background(), report, nil)

	prompt := dispatcher.req.Prompt
	assert.Contains(t, prompt, "s1")
	assert.Contains(t, prompt, report.Diagnosis.Summary)
	assert.Contains(t, prompt, report.Diagnosis.SuggestedAction)
	assert.Contains(t, prompt, "bash: 12 calls (9 errors)")
	assert.Contains(t, prompt, "read: 3 calls")
}

func TestFormatToolActivity_TopTenByCount(t *testing.T) {
	var patterns []models.ToolPattern
	for i := 0; i < 12; i++ {
		patterns = append(patterns, models.ToolPattern{
			Tool:  string(rune('a' + i)),
			Count: i + 1,
		})
	}
	out := formatToolActivity(patterns)
	// Highest counts survive the cut; the two smallest do not.
	assert.Contains(t, out, "l: 12 calls")
	assert.NotContains(t, out, "a: 1 calls")
	assert.NotContains(t, out, "b: 2 calls")
}

func TestFormatToolActivity_Empty(t *testing.T) {
	out := formatToolActivity(nil)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "no tool activity")
}

package governor

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/punchd-io/punchd/pkg/models"
)

// SessionDispatcher starts a recovery session on the agent host. The fitter
// depends on this interface rather than the HTTP client so tests can supply
// in-memory fakes.
type SessionDispatcher interface {
	CreateSession(ctx context.Context, req models.SessionRequest) (models.SessionResponse, error)
}

// FitterConfig controls recovery session dispatch.
type FitterConfig struct {
	AgentMode      string // empty means "code"
	Model          string // applied only for model_confusion diagnoses
	MaxTokenBudget int
	MSPerDollar    float64
	MinTimeoutMS   int
	MaxTimeoutMS   int
	Host           string
	Port           int
}

// DefaultFitterConfig returns the stock dispatch parameters.
func DefaultFitterConfig() FitterConfig {
	return FitterConfig{
		AgentMode:      "code",
		Model:          "openai/gpt-4o",
		MaxTokenBudget: 100000,
		MSPerDollar:    60000,
		MinTimeoutMS:   30000,
		MaxTimeoutMS:   300000,
	}
}

// Fitter dispatches targeted recovery sessions for diagnosed failures.
type Fitter struct {
	dispatcher SessionDispatcher
	config     FitterConfig
	logger     *slog.Logger
}

// NewFitter creates a Fitter with the given dispatcher and configuration.
func NewFitter(dispatcher SessionDispatcher, config FitterConfig) *Fitter {
	return &Fitter{
		dispatcher: dispatcher,
		config:     config,
		logger:     slog.Default(),
	}
}

// Dispatch builds a category-specific recovery prompt and starts a fitter
// session on the host. Dispatcher failures are folded into the result rather
// than returned; the governor pipeline records the outcome either way.
func (f *Fitter) Dispatch(ctx context.Context, report models.DiagnosisReport, kill *models.KillConfirmation) models.FitterResult {
	req := models.SessionRequest{
		Prompt:         buildPrompt(report),
		MaxTokenBudget: f.tokenBudget(),
		TimeoutMS:      f.timeoutMS(report, kill),
		AgentMode:      f.agentMode(),
		Model:          f.modelOverride(report.Diagnosis.Category),
		AutoApprove:    true,
		Host:           f.config.Host,
		Port:           f.config.Port,
	}

	f.logger.Info("Dispatching fitter session",
		"original_session_id", report.SessionID,
		"category", string(report.Diagnosis.Category),
		"agent_mode", req.AgentMode,
		"timeout_ms", req.TimeoutMS)

	resp, err := f.dispatcher.CreateSession(ctx, req)
	if err != nil {
		f.logger.Error("Fitter dispatch failed",
			"original_session_id", report.SessionID, "error", err)
		return models.FitterResult{
			OriginalSessionID: report.SessionID,
			Category:          report.Diagnosis.Category,
			Success:           false,
			Error:             err.Error(),
			Cost:              0,
		}
	}

	return models.FitterResult{
		OriginalSessionID: report.SessionID,
		FitterSessionID:   resp.SessionID,
		Category:          report.Diagnosis.Category,
		Success:           resp.Success,
		Cost:              resp.Cost,
		FilesChanged:      resp.FilesChanged,
		DurationMS:        resp.DurationMS,
		Error:             resp.Error,
	}
}

func (f *Fitter) agentMode() string {
	if f.config.AgentMode != "" {
		return f.config.AgentMode
	}
	return "code"
}

// modelOverride returns a non-default model only for model_confusion — the one
// category where re-running on the same model is known not to help.
func (f *Fitter) modelOverride(category models.DiagnosisCategory) string {
	if category == models.DiagnosisModelConfusion {
		return f.config.Model
	}
	return ""
}

func (f *Fitter) tokenBudget() int {
	if f.config.MaxTokenBudget > 0 {
		return f.config.MaxTokenBudget
	}
	return 100000
}

// timeoutMS scales the fitter timeout with the cost of the failed session:
// half the spent budget when a kill confirmation is available, else a floor
// derived from tool-call volume, clamped to the configured bounds.
func (f *Fitter) timeoutMS(report models.DiagnosisReport, kill *models.KillConfirmation) int {
	var costBasis float64
	if kill != nil {
		costBasis = 0.5 * kill.FinalMetrics.TotalCost
	} else {
		total := 0
		for _, tp := range report.ToolPatterns {
			total += tp.Count
		}
		costBasis = float64(total) * 0.001
		if costBasis < 0.1 {
			costBasis = 0.1
		}
	}

	timeout := int(costBasis * f.config.MSPerDollar)
	if timeout < f.config.MinTimeoutMS {
		timeout = f.config.MinTimeoutMS
	}
	if timeout > f.config.MaxTimeoutMS {
		timeout = f.config.MaxTimeoutMS
	}
	return timeout
}

var promptTemplates = map[models.DiagnosisCategory]string{
	models.DiagnosisStuckOnApproval: `A previous coding session (id %s) stalled waiting for approval and was terminated.

Problem: %s

Tool activity before termination:
%s

You have full approval to act. %s. Complete the original task directly without asking for confirmation.`,

	models.DiagnosisInfiniteRetry: `A previous coding session (id %s) was terminated after repeatedly retrying a failing operation.

Problem: %s

Tool activity before termination:
%s

Do not repeat the failing approach. %s. If the same operation fails once, diagnose the underlying cause before trying anything else.`,

	models.DiagnosisContextExhaustion: `A previous coding session (id %s) was terminated after exhausting its context re-reading material.

Problem: %s

Tool activity before termination:
%s

Work from a minimal set of files. %s. Read each file at most once and keep notes instead of re-reading.`,

	models.DiagnosisScopeCreep: `A previous coding session (id %s) was terminated after its changes grew far beyond the requested scope.

Problem: %s

Tool activity before termination:
%s

Make the smallest change that satisfies the task. %s. Do not touch files outside the immediate scope.`,

	models.DiagnosisModelConfusion: `A previous coding session (id %s) was terminated after producing contradictory edits.

Problem: %s

Tool activity before termination:
%s

Plan the full change before editing. %s. Apply each edit exactly once and verify it before moving on.`,
}

// buildPrompt renders the per-category recovery prompt. Only the host session
// id is exposed; internal identifiers stay out of the prompt.
func buildPrompt(report models.DiagnosisReport) string {
	tmpl, ok := promptTemplates[report.Diagnosis.Category]
	if !ok {
		tmpl = promptTemplates[models.DiagnosisModelConfusion]
	}
	return fmt.Sprintf(tmpl,
		report.SessionID,
		report.Diagnosis.Summary,
		formatToolActivity(report.ToolPatterns),
		report.Diagnosis.SuggestedAction)
}

// formatToolActivity renders the top 10 tools by call count, descending.
func formatToolActivity(patterns []models.ToolPattern) string {
	if len(patterns) == 0 {
		return "(no tool activity recorded)"
	}
	sorted := make([]models.ToolPattern, len(patterns))
	copy(sorted, patterns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}

	var b strings.Builder
	for _, tp := range sorted {
		fmt.Fprintf(&b, "- %s: %d calls", tp.Tool, tp.Count)
		if tp.ErrorCount > 0 {
			fmt.Fprintf(&b, " (%d errors)", tp.ErrorCount)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

package governor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/punchd-io/punchd/pkg/host"
	"github.com/punchd-io/punchd/pkg/models"
)

// HistoryFetcher is the slice of the agent-host client the diagnoser needs.
type HistoryFetcher interface {
	ListMessages(ctx context.Context, sessionID string) ([]map[string]any, error)
}

// Diagnoser classifies the failure mode of a killed session from its message
// history.
type Diagnoser struct {
	history HistoryFetcher
	logger  *slog.Logger
}

// NewDiagnoser creates a Diagnoser.
func NewDiagnoser(history HistoryFetcher) *Diagnoser {
	return &Diagnoser{
		history: history,
		logger:  slog.Default(),
	}
}

var approvalKeywords = []string{"permission", "approve", "confirm", "proceed", "allow"}

var readTools = map[string]bool{
	"read": true, "readFile": true, "Read": true,
	"cat": true, "grep": true, "Grep": true,
}

var editTools = map[string]bool{
	"edit": true, "editFile": true, "Edit": true,
	"write": true, "Write": true, "writeFile": true,
}

// Diagnose fetches the killed session's history, runs the five failure
// classifiers independently, and picks the highest-confidence verdict (ties
// broken by evaluation order). A failed history fetch degrades to empty
// history, which lands on the low-confidence fallback — diagnosis never
// fails outright.
func (d *Diagnoser) Diagnose(ctx context.Context, kill models.KillConfirmation) models.DiagnosisReport {
	var parts []host.Part
	entries, err := d.history.ListMessages(ctx, kill.SessionID)
	if err != nil {
		d.logger.Warn("History fetch failed, diagnosing from empty history",
			"session_id", kill.SessionID, "error", err)
	} else {
		parts = host.FlattenParts(entries)
	}

	patterns := toolPatterns(parts)

	candidates := []*models.Diagnosis{
		classifyStuckOnApproval(parts),
		classifyInfiniteRetry(parts, patterns),
		classifyContextExhaustion(kill, patterns),
		classifyScopeCreep(patterns),
		classifyModelConfusion(parts, patterns),
	}

	best := &models.Diagnosis{
		Category:        models.DiagnosisModelConfusion,
		Confidence:      0.30,
		Summary:         "Unable to classify failure — defaulting to model_confusion",
		SuggestedAction: "Re-dispatch with simplified prompt and different model",
	}
	chosen := best
	found := false
	for _, c := range candidates {
		if c == nil {
			continue
		}
		// Strict greater-than keeps earlier classifiers ahead on ties.
		if !found || c.Confidence > chosen.Confidence {
			chosen = c
			found = true
		}
	}

	return models.DiagnosisReport{
		SessionID:    kill.SessionID,
		DiagnosedAt:  time.Now(),
		Diagnosis:    *chosen,
		ToolPatterns: patterns,
	}
}

// toolPatterns aggregates per-tool activity, preserving first-seen order.
func toolPatterns(parts []host.Part) []models.ToolPattern {
	index := make(map[string]int)
	var patterns []models.ToolPattern
	for _, p := range parts {
		if p.Type != "tool" || p.Tool == "" {
			continue
		}
		i, ok := index[p.Tool]
		if !ok {
			i = len(patterns)
			index[p.Tool] = i
			patterns = append(patterns, models.ToolPattern{Tool: p.Tool})
		}
		patterns[i].Count++
		patterns[i].LastStatus = p.Status
		if p.Status == "error" {
			patterns[i].ErrorCount++
		}
	}
	return patterns
}

func classifyStuckOnApproval(parts []host.Part) *models.Diagnosis {
	tail := parts
	if len(tail) > 10 {
		tail = tail[len(tail)-10:]
	}
	if len(tail) == 0 {
		return nil
	}

	textCount, toolCount := 0, 0
	keywordHit := false
	for _, p := range tail {
		switch p.Type {
		case "text":
			textCount++
		case "tool":
			toolCount++
		}
		content := strings.ToLower(p.Content)
		for _, kw := range approvalKeywords {
			if strings.Contains(content, kw) {
				keywordHit = true
				break
			}
		}
	}

	if textCount >= 7 && toolCount == 0 {
		return &models.Diagnosis{
			Category:        models.DiagnosisStuckOnApproval,
			Confidence:      0.75,
			Summary:         fmt.Sprintf("Session produced %d consecutive text responses with no tool activity", textCount),
			SuggestedAction: "Re-dispatch with auto-approve enabled and explicit scope boundaries",
		}
	}
	if keywordHit && toolCount <= 2 {
		return &models.Diagnosis{
			Category:        models.DiagnosisStuckOnApproval,
			Confidence:      0.65,
			Summary:         "Session was asking for permission or confirmation instead of acting",
			SuggestedAction: "Re-dispatch with auto-approve enabled and explicit scope boundaries",
		}
	}
	return nil
}

func classifyInfiniteRetry(parts []host.Part, patterns []models.ToolPattern) *models.Diagnosis {
	var failing []models.ToolPattern
	for _, tp := range patterns {
		if tp.Count >= 3 && float64(tp.ErrorCount)/float64(tp.Count) >= 0.5 {
			failing = append(failing, tp)
		}
	}
	if len(failing) == 0 {
		return nil
	}

	// Trailing run of erroring tool parts; anything else ends the streak.
	streak := 0
	lastTool, lastError := "", ""
	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		if p.Type != "tool" || p.Status != "error" {
			break
		}
		streak++
		if lastTool == "" {
			lastTool = p.Tool
			lastError = p.Error
		}
	}

	if streak >= 3 {
		summary := fmt.Sprintf("Tool %q failed %d times in a row", lastTool, streak)
		if lastError != "" {
			summary += fmt.Sprintf(" (last error: %s)", truncate(lastError, 120))
		}
		return &models.Diagnosis{
			Category:        models.DiagnosisInfiniteRetry,
			Confidence:      0.85,
			Summary:         summary,
			SuggestedAction: "Re-dispatch with the failing operation replaced or its precondition fixed",
		}
	}

	worst := failing[0]
	worstRatio := float64(worst.ErrorCount) / float64(worst.Count)
	for _, tp := range failing[1:] {
		if ratio := float64(tp.ErrorCount) / float64(tp.Count); ratio > worstRatio {
			worst, worstRatio = tp, ratio
		}
	}
	return &models.Diagnosis{
		Category:        models.DiagnosisInfiniteRetry,
		Confidence:      0.60,
		Summary:         fmt.Sprintf("Tool %q errored in %d of %d calls", worst.Tool, worst.ErrorCount, worst.Count),
		SuggestedAction: "Re-dispatch with the failing operation replaced or its precondition fixed",
	}
}

func classifyContextExhaustion(kill models.KillConfirmation, patterns []models.ToolPattern) *models.Diagnosis {
	if kill.Trigger.Classification == models.LoopCachePlateau {
		return &models.Diagnosis{
			Category:        models.DiagnosisContextExhaustion,
			Confidence:      0.90,
			Summary:         "Session plateaued on cached content — reprocessing the same material without progress",
			SuggestedAction: "Re-dispatch with a narrowed file scope and summarized context",
		}
	}

	readCount, totalCount := 0, 0
	for _, tp := range patterns {
		totalCount += tp.Count
		if readTools[tp.Tool] {
			readCount += tp.Count
		}
	}
	if totalCount > 0 && readCount >= 10 && float64(readCount)/float64(totalCount) > 0.7 {
		return &models.Diagnosis{
			Category:        models.DiagnosisContextExhaustion,
			Confidence:      0.70,
			Summary:         fmt.Sprintf("Session spent %d of %d tool calls re-reading content", readCount, totalCount),
			SuggestedAction: "Re-dispatch with a narrowed file scope and summarized context",
		}
	}
	return nil
}

func classifyScopeCreep(patterns []models.ToolPattern) *models.Diagnosis {
	editCount := 0
	for _, tp := range patterns {
		if editTools[tp.Tool] {
			editCount += tp.Count
		}
	}
	switch {
	case editCount > 15:
		return &models.Diagnosis{
			Category:        models.DiagnosisScopeCreep,
			Confidence:      0.75,
			Summary:         fmt.Sprintf("Session made %d file edits — far beyond a bounded change", editCount),
			SuggestedAction: "Re-dispatch with an explicit file allowlist and a hard edit budget",
		}
	case editCount > 8:
		return &models.Diagnosis{
			Category:        models.DiagnosisScopeCreep,
			Confidence:      0.50,
			Summary:         fmt.Sprintf("Session made %d file edits, suggesting widening scope", editCount),
			SuggestedAction: "Re-dispatch with an explicit file allowlist and a hard edit budget",
		}
	}
	return nil
}

func classifyModelConfusion(parts []host.Part, patterns []models.ToolPattern) *models.Diagnosis {
	// Tool name stream, for flip-flop (edit → undo → edit) window scanning.
	var tools []string
	for _, p := range parts {
		if p.Type == "tool" && p.Tool != "" {
			tools = append(tools, p.Tool)
		}
	}

	flipFlops := 0
	for i := 0; i+2 < len(tools); i++ {
		if isEditTool(tools[i]) && isUndoTool(tools[i+1]) && isEditTool(tools[i+2]) {
			flipFlops++
		}
	}
	if flipFlops >= 2 {
		return &models.Diagnosis{
			Category:        models.DiagnosisModelConfusion,
			Confidence:      0.80,
			Summary:         fmt.Sprintf("Session edited, reverted, and re-edited %d times", flipFlops),
			SuggestedAction: "Re-dispatch with simplified prompt and different model",
		}
	}

	erroringTools := 0
	for _, tp := range patterns {
		if tp.ErrorCount > 0 {
			erroringTools++
		}
	}
	if erroringTools >= 4 {
		return &models.Diagnosis{
			Category:        models.DiagnosisModelConfusion,
			Confidence:      0.60,
			Summary:         fmt.Sprintf("Session hit errors across %d distinct tools", erroringTools),
			SuggestedAction: "Re-dispatch with simplified prompt and different model",
		}
	}
	return nil
}

func isEditTool(name string) bool {
	return name == "edit" || name == "Edit"
}

func isUndoTool(name string) bool {
	return name == "undo" || name == "revert"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// Package punchcard validates observed session behavior against punch cards:
// per-card requirement rows that declare which punches a task must (or must
// not) have produced.
package punchcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/punchd-io/punchd/pkg/models"
	"github.com/punchd-io/punchd/pkg/services"
)

// Tool-call punch keys counted as file mutations for adherence checks.
var mutationKeys = []string{"write_to_file", "edit_file", "apply_diff"}

// Validator checks a task's punch record against punch-card requirements.
type Validator struct {
	punches   *services.PunchService
	cards     *services.CardService
	childRels *services.ChildRelationService
	logger    *slog.Logger
}

// NewValidator creates a Validator over the given services.
func NewValidator(punches *services.PunchService, cards *services.CardService, childRels *services.ChildRelationService) *Validator {
	return &Validator{
		punches:   punches,
		cards:     cards,
		childRels: childRels,
		logger:    slog.Default(),
	}
}

// Validate checks every required row of the card against the task's punches.
// A card with no requirement rows fails outright: an empty card is not
// vacuously passing.
func (v *Validator) Validate(ctx context.Context, taskID, cardID string) (*models.ValidationResult, error) {
	reqs, err := v.cards.GetRequirements(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("fetching card %s: %w", cardID, err)
	}
	if len(reqs) == 0 {
		v.logger.Warn("Punch card has no requirements", "card_id", cardID)
		return &models.ValidationResult{
			Status:     models.ValidationFail,
			Missing:    []string{},
			Violations: []string{},
		}, nil
	}

	result := &models.ValidationResult{
		Missing:    []string{},
		Violations: []string{},
	}
	for _, req := range reqs {
		if !req.Required {
			continue
		}
		count, err := v.punches.CountMatching(ctx, taskID, req.PunchType, req.PunchKeyPattern)
		if err != nil {
			return nil, fmt.Errorf("counting punches for %s/%s: %w", req.PunchType, req.PunchKeyPattern, err)
		}
		label := requirementLabel(req)
		if req.Forbidden {
			if count > 0 {
				result.Violations = append(result.Violations, label)
			}
		} else if count <= 0 {
			result.Missing = append(result.Missing, label)
		}
	}

	if len(result.Missing) == 0 && len(result.Violations) == 0 {
		result.Status = models.ValidationPass
	} else {
		result.Status = models.ValidationFail
	}
	return result, nil
}

// CheckToolAdherence counts the task's file-mutating tool-call punches and
// reports whether the count falls inside [lo, hi].
func (v *Validator) CheckToolAdherence(ctx context.Context, taskID string, lo, hi int) (*models.ToolAdherenceResult, error) {
	count, err := v.punches.CountKeysIn(ctx, taskID, models.PunchTypeToolCall, mutationKeys)
	if err != nil {
		return nil, fmt.Errorf("counting mutation punches for task %s: %w", taskID, err)
	}
	return &models.ToolAdherenceResult{
		Count:       count,
		Min:         lo,
		Max:         hi,
		WithinRange: lo <= count && count <= hi,
	}, nil
}

// VerifySubtasks validates every recorded child of the parent task against
// the child card and aggregates the per-child outcomes.
func (v *Validator) VerifySubtasks(ctx context.Context, parentTaskID, childCardID string) (*models.SubtaskVerification, error) {
	children, err := v.childRels.Children(ctx, parentTaskID)
	if err != nil {
		return nil, fmt.Errorf("listing children of %s: %w", parentTaskID, err)
	}

	verification := &models.SubtaskVerification{
		ParentTaskID:     parentTaskID,
		Children:         []models.ChildValidation{},
		AllChildrenValid: true,
	}
	for _, childID := range children {
		result, err := v.Validate(ctx, childID, childCardID)
		if err != nil {
			return nil, fmt.Errorf("validating child %s: %w", childID, err)
		}
		verification.Children = append(verification.Children, models.ChildValidation{
			ChildID: childID,
			Result:  *result,
		})
		if !result.Passed() {
			verification.AllChildrenValid = false
		}
	}
	return verification, nil
}

func requirementLabel(req models.CardRequirement) string {
	if req.Description != "" {
		return fmt.Sprintf("%s (%s %s)", req.Description, req.PunchType, req.PunchKeyPattern)
	}
	return fmt.Sprintf("%s %s", req.PunchType, req.PunchKeyPattern)
}

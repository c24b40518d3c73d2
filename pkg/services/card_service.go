package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/punchd-io/punchd/ent"
	"github.com/punchd-io/punchd/ent/punchcardrequirement"
	"github.com/punchd-io/punchd/pkg/models"
)

// CardService manages punch-card requirement rows.
type CardService struct {
	client *ent.Client
}

// NewCardService creates a new CardService
func NewCardService(client *ent.Client) *CardService {
	return &CardService{client: client}
}

// GetRequirements returns all requirement rows of a card.
func (s *CardService) GetRequirements(ctx context.Context, cardID string) ([]models.CardRequirement, error) {
	if s.client == nil {
		return nil, ErrNotConnected
	}
	rows, err := s.client.PunchCardRequirement.Query().
		Where(punchcardrequirement.CardIDEQ(cardID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query card %s: %w", cardID, err)
	}

	reqs := make([]models.CardRequirement, 0, len(rows))
	for _, row := range rows {
		reqs = append(reqs, models.CardRequirement{
			CardID:          row.CardID,
			PunchType:       models.PunchType(row.PunchType),
			PunchKeyPattern: row.PunchKeyPattern,
			Required:        row.Required,
			Forbidden:       row.Forbidden,
			Description:     row.Description,
		})
	}
	return reqs, nil
}

// Put replaces a card's requirement rows atomically.
func (s *CardService) Put(httpCtx context.Context, cardID string, reqs []models.CardRequirement) error {
	if s.client == nil {
		return ErrNotConnected
	}
	if cardID == "" {
		return NewValidationError("card_id", "required")
	}
	for _, req := range reqs {
		if !req.PunchType.IsValid() {
			return NewValidationError("punch_type", fmt.Sprintf("unknown type %q", req.PunchType))
		}
		if req.PunchKeyPattern == "" {
			return NewValidationError("punch_key_pattern", "required")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.PunchCardRequirement.Delete().
		Where(punchcardrequirement.CardIDEQ(cardID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear card %s: %w", cardID, err)
	}

	for _, req := range reqs {
		_, err := tx.PunchCardRequirement.Create().
			SetID(uuid.New().String()).
			SetCardID(cardID).
			SetPunchType(punchcardrequirement.PunchType(req.PunchType)).
			SetPunchKeyPattern(req.PunchKeyPattern).
			SetRequired(req.Required).
			SetForbidden(req.Forbidden).
			SetDescription(req.Description).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert requirement: %w", err)
		}
	}

	return tx.Commit()
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/punchd-io/punchd/pkg/models"
)

// PutCardRequest is the body of PUT /api/v1/cards/:card_id.
type PutCardRequest struct {
	Requirements []CardRequirementBody `json:"requirements" binding:"required"`
}

// CardRequirementBody is one requirement row in a card update.
type CardRequirementBody struct {
	PunchType       string `json:"punch_type" binding:"required"`
	PunchKeyPattern string `json:"punch_key_pattern" binding:"required"`
	Required        *bool  `json:"required"`
	Forbidden       bool   `json:"forbidden"`
	Description     string `json:"description"`
}

// ValidateCardRequest is the body of POST /api/v1/cards/:card_id/validate.
type ValidateCardRequest struct {
	TaskID    string  `json:"task_id" binding:"required"`
	ToolRange *[2]int `json:"tool_range"`
	// ChildCardID, when set, additionally verifies the task's children
	// against that card.
	ChildCardID string `json:"child_card_id"`
}

// PutCard handles PUT /api/v1/cards/:card_id, replacing the card's
// requirement rows atomically.
func (s *Server) PutCard(c *gin.Context) {
	cardID := c.Param("card_id")

	var req PutCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := make([]models.CardRequirement, 0, len(req.Requirements))
	for _, body := range req.Requirements {
		required := true
		if body.Required != nil {
			required = *body.Required
		}
		rows = append(rows, models.CardRequirement{
			CardID:          cardID,
			PunchType:       models.PunchType(body.PunchType),
			PunchKeyPattern: body.PunchKeyPattern,
			Required:        required,
			Forbidden:       body.Forbidden,
			Description:     body.Description,
		})
	}

	if err := s.writer.Cards.Put(c.Request.Context(), cardID, rows); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"card_id":      cardID,
		"requirements": len(rows),
	})
}

// ValidateCard handles POST /api/v1/cards/:card_id/validate.
func (s *Server) ValidateCard(c *gin.Context) {
	cardID := c.Param("card_id")

	var req ValidateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.validator.Validate(c.Request.Context(), req.TaskID, cardID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	if req.ToolRange != nil {
		adherence, err := s.validator.CheckToolAdherence(c.Request.Context(), req.TaskID, req.ToolRange[0], req.ToolRange[1])
		if err != nil {
			abortServiceError(c, err)
			return
		}
		result.ToolAdherence = adherence
	}

	resp := gin.H{
		"card_id": cardID,
		"task_id": req.TaskID,
		"result":  result,
	}

	if req.ChildCardID != "" {
		verification, err := s.validator.VerifySubtasks(c.Request.Context(), req.TaskID, req.ChildCardID)
		if err != nil {
			abortServiceError(c, err)
			return
		}
		resp["subtasks"] = verification
	}

	c.JSON(http.StatusOK, resp)
}

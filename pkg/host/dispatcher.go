package host

import (
	"context"
	"fmt"
	"time"

	"github.com/punchd-io/punchd/pkg/models"
)

// Dispatcher launches bounded fitter sessions on the agent host. It
// implements the governor's SessionDispatcher interface.
type Dispatcher struct {
	client *Client
}

// NewDispatcher creates a Dispatcher backed by an agent-host client.
func NewDispatcher(client *Client) *Dispatcher {
	return &Dispatcher{client: client}
}

// CreateSession creates a host session and sends the recovery prompt,
// blocking until the host responds or the timeout elapses. When the request
// names a host and port the session is dispatched there; otherwise the
// dispatcher's own client binding is used.
func (d *Dispatcher) CreateSession(ctx context.Context, req models.SessionRequest) (models.SessionResponse, error) {
	start := time.Now()

	client := d.client
	if req.Host != "" && req.Port > 0 {
		client = client.forHost(req.Host, req.Port)
	}

	var created struct {
		ID string `json:"id"`
	}
	payload := map[string]any{
		"mode": req.AgentMode,
	}
	if req.Model != "" {
		payload["model"] = req.Model
	}
	if err := client.postJSON(ctx, "/session", payload, &created); err != nil {
		return models.SessionResponse{}, fmt.Errorf("create fitter session: %w", err)
	}
	if created.ID == "" {
		return models.SessionResponse{}, fmt.Errorf("create fitter session: host returned no id")
	}

	msgCtx := ctx
	if req.TimeoutMS > 0 {
		var cancel context.CancelFunc
		msgCtx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeoutMS)*time.Millisecond)
		defer cancel()
	}

	message := map[string]any{
		"parts": []map[string]any{
			{"type": "text", "text": req.Prompt},
		},
		"autoApprove": req.AutoApprove,
	}
	if req.MaxTokenBudget > 0 {
		message["maxTokens"] = req.MaxTokenBudget
	}

	var result struct {
		Cost         float64  `json:"cost"`
		FilesChanged []string `json:"filesChanged"`
		Error        string   `json:"error"`
	}
	if err := client.postJSON(msgCtx, "/session/"+created.ID+"/message", message, &result); err != nil {
		return models.SessionResponse{
			SessionID:  created.ID,
			Success:    false,
			DurationMS: time.Since(start).Milliseconds(),
			Error:      err.Error(),
		}, nil
	}

	return models.SessionResponse{
		SessionID:    created.ID,
		Success:      result.Error == "",
		Cost:         result.Cost,
		FilesChanged: result.FilesChanged,
		DurationMS:   time.Since(start).Milliseconds(),
		Error:        result.Error,
	}, nil
}

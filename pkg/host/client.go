// Package host is the HTTP client for the agent host's session API and SSE
// event stream. The host owns sessions and executes tools; punchd only
// observes and, when the governor decides, aborts.
package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client provides HTTP access to the agent host.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an agent-host client for host:port.
func NewClient(hostname string, port int) *Client {
	return &Client{
		baseURL:    fmt.Sprintf("http://%s:%d", hostname, port),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}
}

// BaseURL returns the host's base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// forHost returns a copy of the client aimed at a different host:port,
// sharing the underlying HTTP client.
func (c *Client) forHost(hostname string, port int) *Client {
	rebound := *c
	rebound.baseURL = fmt.Sprintf("http://%s:%d", hostname, port)
	return &rebound
}

// ListSessions returns all sessions known to the host.
func (c *Client) ListSessions(ctx context.Context) ([]SessionInfo, error) {
	var raw []map[string]any
	if err := c.getJSON(ctx, "/session", &raw); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	sessions := make([]SessionInfo, 0, len(raw))
	for _, entry := range raw {
		info := SessionInfo{
			ID:        str(entry, "id"),
			Status:    str(entry, "status"),
			UpdatedAt: parseTime(entry["updatedAt"]),
			CreatedAt: parseTime(entry["createdAt"]),
		}
		if info.ID != "" {
			sessions = append(sessions, info)
		}
	}
	return sessions, nil
}

// ListMessages returns a session's raw message entries in order. The dynamic
// shape is preserved so catch-up can replay parts through the classifier with
// faithful hashes; use FlattenParts for the normalized view.
func (c *Client) ListMessages(ctx context.Context, sessionID string) ([]map[string]any, error) {
	var raw []map[string]any
	if err := c.getJSON(ctx, "/session/"+sessionID+"/message", &raw); err != nil {
		return nil, fmt.Errorf("list messages for %s: %w", sessionID, err)
	}
	return raw, nil
}

// ListChildren returns the ids of a session's child sessions.
func (c *Client) ListChildren(ctx context.Context, sessionID string) ([]string, error) {
	var raw []map[string]any
	if err := c.getJSON(ctx, "/session/"+sessionID+"/children", &raw); err != nil {
		return nil, fmt.Errorf("list children for %s: %w", sessionID, err)
	}
	children := make([]string, 0, len(raw))
	for _, entry := range raw {
		if id := str(entry, "id"); id != "" {
			children = append(children, id)
		}
	}
	return children, nil
}

// Abort aborts a session. A 404 (or transport-level not-found) means the
// session is already gone and is reported as alreadyDead, not an error.
func (c *Client) Abort(ctx context.Context, sessionID string) (alreadyDead bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/session/"+sessionID+"/abort", nil)
	if err != nil {
		return false, fmt.Errorf("create abort request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return true, nil
		}
		return false, fmt.Errorf("abort session %s: %w", sessionID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return true, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return false, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("abort session %s: HTTP %d: %s", sessionID, resp.StatusCode, string(body))
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

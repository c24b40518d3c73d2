package host

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/punchd-io/punchd/pkg/models"
)

// StreamEvents opens the host's SSE /event stream and invokes handle for each
// decoded event, one at a time — persistence back-pressures ingestion by
// blocking here. Returns nil on clean stream end, ctx.Err() on cancellation,
// or the first handler/transport error. The caller owns reconnection.
func (c *Client) StreamEvents(ctx context.Context, handle func(models.HostEvent) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/event", nil)
	if err != nil {
		return fmt.Errorf("create stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	// The stream is long-lived; the request context, not the client timeout,
	// bounds its lifetime.
	streamClient := &http.Client{Transport: c.httpClient.Transport}
	resp, err := streamClient.Do(req)
	if err != nil {
		return fmt.Errorf("open event stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("event stream: HTTP %d: %s", resp.StatusCode, string(body))
	}
	if ct := strings.ToLower(resp.Header.Get("Content-Type")); ct != "" && !strings.HasPrefix(ct, "text/event-stream") {
		return fmt.Errorf("event stream: unexpected content type %q", resp.Header.Get("Content-Type"))
	}

	reader := bufio.NewReader(resp.Body)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		_, data, err := readSSEFrame(reader)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err == io.EOF {
				return nil // clean stream end — caller reconnects
			}
			return fmt.Errorf("read event stream: %w", err)
		}
		if len(data) == 0 {
			continue
		}

		var event models.HostEvent
		if err := json.Unmarshal(data, &event); err != nil {
			c.logger.Warn("Skipping undecodable SSE event", "error", err)
			continue
		}
		if event.Type == "" {
			continue
		}

		if err := handle(event); err != nil {
			return err
		}
	}
}

// readSSEFrame reads one SSE frame (up to a blank line) and returns its event
// name and accumulated data payload. Comment lines are skipped; multi-line
// data is joined with newlines per the SSE spec.
func readSSEFrame(reader *bufio.Reader) (string, []byte, error) {
	var event string
	var data []byte
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if event == "" && len(data) == 0 {
				continue
			}
			return event, data, nil
		}
		if strings.HasPrefix(line, ":") {
			continue
		}
		if after, ok := strings.CutPrefix(line, "event:"); ok {
			event = strings.TrimSpace(after)
			continue
		}
		if after, ok := strings.CutPrefix(line, "data:"); ok {
			chunk := strings.TrimPrefix(after, " ")
			if len(data) > 0 {
				data = append(data, '\n')
			}
			data = append(data, chunk...)
		}
	}
}

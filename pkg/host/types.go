package host

import (
	"time"
)

// SessionInfo is one entry of GET /session.
type SessionInfo struct {
	ID        string
	Status    string
	UpdatedAt time.Time
	CreatedAt time.Time
}

// Part is the normalized view of one message part, used by the diagnosis
// engine. The raw dynamic shape never leaves this package.
type Part struct {
	Type    string
	Tool    string
	Status  string
	Error   string
	Content string
}

// RawParts extracts the part maps from one raw message entry. The host has
// shipped two shapes: a group-per-message shape with a nested "parts" array,
// and a flat shape where the entry itself is the part. Both are accepted.
func RawParts(entry map[string]any) []map[string]any {
	if entry == nil {
		return nil
	}
	if raw, ok := entry["parts"].([]any); ok {
		parts := make([]map[string]any, 0, len(raw))
		for _, item := range raw {
			if m, ok := item.(map[string]any); ok {
				parts = append(parts, m)
			}
		}
		return parts
	}
	if _, ok := entry["type"]; ok {
		return []map[string]any{entry}
	}
	return nil
}

// FlattenParts normalizes raw message entries into a flat part sequence,
// accepting both message-history shapes.
func FlattenParts(entries []map[string]any) []Part {
	var parts []Part
	for _, entry := range entries {
		for _, raw := range RawParts(entry) {
			parts = append(parts, normalizePart(raw))
		}
	}
	return parts
}

func normalizePart(raw map[string]any) Part {
	p := Part{
		Type: str(raw, "type"),
		Tool: str(raw, "tool"),
	}
	if state, ok := raw["state"].(map[string]any); ok {
		p.Status = str(state, "status")
		p.Error = str(state, "error")
	}
	p.Content = str(raw, "content")
	if p.Content == "" {
		p.Content = str(raw, "text")
	}
	return p
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// parseTime accepts the host's time encodings: RFC3339 strings and epoch
// milliseconds (JSON numbers).
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case float64:
		return time.UnixMilli(int64(t))
	}
	return time.Time{}
}

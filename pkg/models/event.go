package models

// HostEvent is the raw event envelope emitted by the agent host's SSE stream.
// Properties is intentionally loosely typed: the classifier is the only
// consumer of the dynamic shape, and the canonical hash is computed over
// exactly {type, properties}.
type HostEvent struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

// Well-known host event types.
const (
	EventMessagePartUpdated = "message.part.updated"
	EventSessionUpdated     = "session.updated"
	EventSessionCreated     = "session.created"
	EventSessionDeleted     = "session.deleted"
	EventSessionIdle        = "session.idle"
	EventSessionError       = "session.error"
)

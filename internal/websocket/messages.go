package websocket

import (
	"encoding/json"
	"time"
)

// MessageType identifies the type of WebSocket message.
type MessageType string

const (
	// Server -> Client event types
	TypeSyncCompleted MessageType = "sync.completed"
	TypeSyncError     MessageType = "sync.error"
)

// Message represents a WebSocket message envelope.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   any         `json:"payload"`
}

// NewMessage creates a new message with the current timestamp.
func NewMessage(msgType MessageType, payload any) Message {
	return Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// JSON serializes the message to JSON bytes.
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// SyncCompletedPayload is the payload for sync.completed events.
type SyncCompletedPayload struct {
	Status  string `json:"status"`
	Fetched int    `json:"fetched"`
	Synced  int    `json:"synced"`
	Skipped int    `json:"skipped"`
}

// SyncErrorPayload is the payload for sync.error events.
type SyncErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

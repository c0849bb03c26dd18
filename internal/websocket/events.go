package websocket

import (
	"log"

	"github.com/appointment-bridge/backend/internal/models"
)

// EventBroadcaster handles broadcasting sync events to WebSocket clients.
type EventBroadcaster struct {
	hub *Hub
}

// NewEventBroadcaster creates a new event broadcaster.
func NewEventBroadcaster(hub *Hub) *EventBroadcaster {
	return &EventBroadcaster{hub: hub}
}

// BroadcastSyncCompleted sends a sync completed event with the tally.
func (b *EventBroadcaster) BroadcastSyncCompleted(result models.SyncResult) {
	payload := SyncCompletedPayload{
		Status:  "success",
		Fetched: result.Fetched,
		Synced:  result.Synced,
		Skipped: result.Skipped,
	}

	b.broadcast(NewMessage(TypeSyncCompleted, payload))
}

// BroadcastSyncError sends a sync error event.
func (b *EventBroadcaster) BroadcastSyncError(err error) {
	payload := SyncErrorPayload{
		Error:   "sync_error",
		Message: err.Error(),
	}

	b.broadcast(NewMessage(TypeSyncError, payload))
}

// broadcast sends a message to all connected clients.
func (b *EventBroadcaster) broadcast(msg Message) {
	data, err := msg.JSON()
	if err != nil {
		log.Printf("Error encoding WebSocket message: %v", err)
		return
	}

	b.hub.Broadcast(data)
}

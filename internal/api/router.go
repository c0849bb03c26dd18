// Package api provides HTTP routing for the sync bridge.
package api

import (
	"github.com/gorilla/mux"

	"github.com/appointment-bridge/backend/internal/api/handlers"
	"github.com/appointment-bridge/backend/internal/api/middleware"
	"github.com/appointment-bridge/backend/internal/syncer"
	"github.com/appointment-bridge/backend/internal/websocket"
)

// NewRouter creates and configures the HTTP router. The hub may be nil,
// in which case the websocket endpoint is not registered and sync
// results are not broadcast.
func NewRouter(factory syncer.ServiceFactory, hub *websocket.Hub) *mux.Router {
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logging)
	r.Use(middleware.ErrorRecovery)

	var broadcaster *websocket.EventBroadcaster
	if hub != nil {
		broadcaster = websocket.NewEventBroadcaster(hub)
		r.HandleFunc("/ws", handlers.WebSocketUpgrade(hub)).Methods("GET")
	}

	r.HandleFunc("/health", handlers.Health()).Methods("GET")
	r.HandleFunc("/sync", handlers.Sync(factory, broadcaster)).Methods("POST")

	return r
}

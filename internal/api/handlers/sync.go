package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/appointment-bridge/backend/internal/apperr"
	"github.com/appointment-bridge/backend/internal/api/middleware"
	"github.com/appointment-bridge/backend/internal/syncer"
	"github.com/appointment-bridge/backend/internal/websocket"
)

// updatedSinceLayouts are the accepted formats for the updated_since
// query parameter, tried in order.
var updatedSinceLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Sync returns the handler for POST /sync. A fresh sync service is
// built per request so a credential problem surfaces on the request
// that hits it. The broadcaster may be nil.
func Sync(factory syncer.ServiceFactory, broadcaster *websocket.EventBroadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updatedSince, err := parseUpdatedSince(r.URL.Query().Get("updated_since"))
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid updated_since format")
			return
		}

		ctx := r.Context()

		service, err := factory(ctx)
		if err != nil {
			writeSyncError(w, broadcaster, err)
			return
		}

		result, err := service.Sync(ctx, updatedSince)
		if err != nil {
			writeSyncError(w, broadcaster, err)
			return
		}

		if broadcaster != nil {
			broadcaster.BroadcastSyncCompleted(*result)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// writeSyncError maps a sync failure to its response. Transport and
// unexpected failures are logged in full and reported generically;
// credential failures are reported distinctly without leaking the path.
func writeSyncError(w http.ResponseWriter, broadcaster *websocket.EventBroadcaster, err error) {
	if broadcaster != nil {
		broadcaster.BroadcastSyncError(err)
	}

	switch {
	case errors.Is(err, apperr.ErrCredentials):
		middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Google credentials file was not found")
	case errors.Is(err, apperr.ErrCalendarTransport):
		// 502 is reserved for the appointment API; a calendar outage is
		// reported like any other internal failure.
		log.Printf("Calendar API error: %v", err)
		middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Sync failed")
	case errors.Is(err, apperr.ErrTransport):
		log.Printf("Third-party API error: %v", err)
		middleware.WriteError(w, http.StatusBadGateway, middleware.ErrBadGateway, "Failed to fetch appointments")
	default:
		log.Printf("Unexpected sync error: %v", err)
		middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Sync failed")
	}
}

// parseUpdatedSince parses the optional updated_since parameter.
// An empty value means no filter.
func parseUpdatedSince(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for _, layout := range updatedSinceLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}

	return nil, apperr.ErrInvalidInput
}

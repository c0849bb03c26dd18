package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointment-bridge/backend/internal/models"
	"github.com/appointment-bridge/backend/internal/syncer"
)

type noopSource struct{}

func (noopSource) Fetch(ctx context.Context, updatedSince *time.Time) ([]models.Appointment, error) {
	return nil, nil
}

type noopSink struct{}

func (noopSink) Exists(ctx context.Context, appointmentID string) (bool, error) {
	return false, nil
}

func (noopSink) Create(ctx context.Context, appt models.Appointment) (*models.CalendarEvent, error) {
	return &models.CalendarEvent{}, nil
}

func newTestRouter() http.Handler {
	factory := func(ctx context.Context) (*syncer.Service, error) {
		return syncer.NewService(noopSource{}, noopSink{}), nil
	}
	return NewRouter(factory, nil)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodPost, "/sync", http.StatusOK},
		{http.MethodGet, "/sync", http.StatusMethodNotAllowed},
		{http.MethodPost, "/health", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_SyncReturnsJSONTally(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/sync", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"fetched":0,"synced":0,"skipped":0}`, rec.Body.String())
}

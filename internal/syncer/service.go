// Package syncer orchestrates the one-way mirror from the appointment
// API into the calendar.
package syncer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/appointment-bridge/backend/internal/models"
)

// Source fetches appointment records from the upstream service.
type Source interface {
	Fetch(ctx context.Context, updatedSince *time.Time) ([]models.Appointment, error)
}

// Sink queries and creates events in the target calendar.
type Sink interface {
	Exists(ctx context.Context, appointmentID string) (bool, error)
	Create(ctx context.Context, appt models.Appointment) (*models.CalendarEvent, error)
}

// ServiceFactory builds a sync service. Handlers and the scheduler
// construct a fresh service per run so credential problems surface on
// the run that hits them, and so tests can substitute fakes.
type ServiceFactory func(ctx context.Context) (*Service, error)

// Service runs the sync decision procedure over a source and a sink.
type Service struct {
	source Source
	sink   Sink
}

// NewService creates a sync service.
func NewService(source Source, sink Sink) *Service {
	return &Service{
		source: source,
		sink:   sink,
	}
}

// Sync fetches appointments and mirrors the ones not yet present in the
// calendar, one at a time, in upstream order.
//
// An appointment whose id coerces to the empty string is skipped; that
// is the only per-item recovery. Any error from the source or the sink
// aborts the whole run with no partial result: the durable calendar
// state makes a rerun idempotent, so aborted work is simply retried by
// the next invocation.
func (s *Service) Sync(ctx context.Context, updatedSince *time.Time) (*models.SyncResult, error) {
	appointments, err := s.source.Fetch(ctx, updatedSince)
	if err != nil {
		return nil, fmt.Errorf("fetching appointments: %w", err)
	}

	result := &models.SyncResult{Fetched: len(appointments)}

	for _, appt := range appointments {
		id := appt.ID.String()
		if id == "" {
			log.Printf("Skipping appointment with missing id (title %q)", appt.Title)
			result.Skipped++
			continue
		}

		exists, err := s.sink.Exists(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("checking event for appointment %s: %w", id, err)
		}
		if exists {
			result.Skipped++
			continue
		}

		if _, err := s.sink.Create(ctx, appt); err != nil {
			return nil, fmt.Errorf("creating event for appointment %s: %w", id, err)
		}
		result.Synced++
	}

	return result, nil
}

// Package calendar provides the Google Calendar sink that appointments
// are mirrored into.
package calendar

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/appointment-bridge/backend/internal/apperr"
	"github.com/appointment-bridge/backend/internal/models"
)

// tagProperty is the private extended property that correlates a
// calendar event with its source appointment. Its presence is the only
// state the bridge relies on for idempotence across runs.
const tagProperty = "source_appointment_id"

// GoogleSink writes appointments as events in a single Google Calendar,
// authenticated with a service account.
type GoogleSink struct {
	service    *gcal.Service
	calendarID string
}

// NewGoogleSink loads the service-account key from credentialsFile and
// builds an authenticated calendar client scoped to calendar read/write.
// Credential failures are wrapped with apperr.ErrCredentials so callers
// can report them distinctly from transient failures.
func NewGoogleSink(ctx context.Context, credentialsFile, calendarID string) (*GoogleSink, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: reading credentials file %q: %v", apperr.ErrCredentials, credentialsFile, err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing service account credentials: %v", apperr.ErrCredentials, err)
	}

	service, err := gcal.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &GoogleSink{
		service:    service,
		calendarID: calendarID,
	}, nil
}

// Exists reports whether the calendar already holds an event tagged with
// the given appointment id. The query is an exact match on the private
// extended property, capped at one result.
func (s *GoogleSink) Exists(ctx context.Context, appointmentID string) (bool, error) {
	events, err := s.service.Events.List(s.calendarID).
		PrivateExtendedProperty(tagProperty + "=" + appointmentID).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return false, fmt.Errorf("%w: listing events for appointment %s: %v", apperr.ErrCalendarTransport, appointmentID, err)
	}

	return len(events.Items) > 0, nil
}

// Create inserts a new event built from the appointment and returns its
// representation. The appointment id is stored as the dedup tag.
func (s *GoogleSink) Create(ctx context.Context, appt models.Appointment) (*models.CalendarEvent, error) {
	created, err := s.service.Events.Insert(s.calendarID, eventFromAppointment(appt)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: creating event for appointment %s: %v", apperr.ErrCalendarTransport, appt.ID, err)
	}

	result := &models.CalendarEvent{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		Link:        created.HtmlLink,
	}
	if created.Start != nil {
		result.Start = created.Start.DateTime
	}
	if created.End != nil {
		result.End = created.End.DateTime
	}
	return result, nil
}

// eventFromAppointment builds the calendar event body. Start and end are
// the upstream's pre-formatted date-time strings, passed through as-is.
func eventFromAppointment(appt models.Appointment) *gcal.Event {
	title := appt.Title
	if title == "" {
		title = "Appointment"
	}

	return &gcal.Event{
		Summary:     title,
		Description: appt.Description,
		Start: &gcal.EventDateTime{
			DateTime: appt.StartTime,
		},
		End: &gcal.EventDateTime{
			DateTime: appt.EndTime,
		},
		ExtendedProperties: &gcal.EventExtendedProperties{
			Private: map[string]string{
				tagProperty: appt.ID.String(),
			},
		},
	}
}

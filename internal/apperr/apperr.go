// Package apperr defines the error kinds shared across the sync path.
// Each layer wraps one of these sentinels so callers can classify
// failures with errors.Is without depending on the failing layer.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks caller-supplied input that failed validation,
	// such as an unparsable updated_since timestamp.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCredentials marks a calendar credential file that could not be
	// loaded or parsed. Reported distinctly so callers can tell a
	// misconfigured deployment from a transient outage.
	ErrCredentials = errors.New("credentials unavailable")

	// ErrTransport marks a network or API failure talking to an
	// external service. On its own it means the appointment API.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse marks an upstream body that decoded to
	// something other than a list of appointment records.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// ErrCalendarTransport marks a network or API failure talking to the
// calendar backend. It is transport-class (errors.Is matches
// ErrTransport too), but kept distinguishable: the HTTP layer reserves
// 502 for the appointment API and reports calendar outages generically.
var ErrCalendarTransport = fmt.Errorf("%w: calendar backend", ErrTransport)

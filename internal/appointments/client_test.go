package appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointment-bridge/backend/internal/apperr"
	"github.com/appointment-bridge/backend/internal/config"
)

func testClient(baseURL string) *Client {
	return NewClient(config.Settings{
		ThirdPartyBaseURL:  baseURL,
		ThirdPartyUsername: "bridge",
		ThirdPartyPassword: "secret",
		Timeout:            5 * time.Second,
	})
}

func TestFetch_DecodesAppointmentList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "request must carry Basic Auth")
		assert.Equal(t, "bridge", user)
		assert.Equal(t, "secret", pass)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "a-1", "title": "Checkup", "description": "Annual", "start_time": "2024-05-01T09:00:00Z", "end_time": "2024-05-01T09:30:00Z"},
			{"id": 42, "title": "Follow-up"}
		]`))
	}))
	defer server.Close()

	appts, err := testClient(server.URL).Fetch(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, appts, 2)

	assert.Equal(t, "a-1", appts[0].ID.String())
	assert.Equal(t, "Checkup", appts[0].Title)
	assert.Equal(t, "2024-05-01T09:00:00Z", appts[0].StartTime)
	assert.Equal(t, "42", appts[1].ID.String(), "numeric ids coerce to strings")
}

func TestFetch_SendsUpdatedSinceInUTC(t *testing.T) {
	var gotParam string
	var hadParam bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParam = r.URL.Query().Get("updated_since")
		_, hadParam = r.URL.Query()["updated_since"]
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	// Offset timestamps are normalized to UTC before hitting the wire.
	zone := time.FixedZone("CEST", 2*60*60)
	since := time.Date(2024, 3, 1, 10, 0, 0, 0, zone)
	_, err := client.Fetch(context.Background(), &since)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T08:00:00Z", gotParam)

	// Without a filter the parameter is omitted entirely.
	_, err = client.Fetch(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, hadParam)
}

func TestFetch_NonSuccessStatusIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Fetch(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrTransport))
}

func TestFetch_ConnectionFailureIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := testClient(server.URL).Fetch(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrTransport))
}

func TestFetch_NonArrayBodyIsMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object", `{"appointments": []}`},
		{"string", `"nope"`},
		{"truncated", `[{"id": "1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := testClient(server.URL).Fetch(context.Background(), nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrMalformedResponse))
		})
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := testClient(server.URL + "/")
	_, err := client.Fetch(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "/appointments", gotPath)
}

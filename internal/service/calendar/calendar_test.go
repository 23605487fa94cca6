package calendar

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school/backend/foundation/web"
	"school/backend/internal/pkg/config"
)

func TestNewClientUnconfigured(t *testing.T) {
	client := NewClient(context.Background(), &config.Config{})

	assert.Equal(t, StateUnconfigured, client.State())

	_, err := client.CreateEvent(context.Background(), Event{
		Summary:   "Sports day",
		StartTime: "2026-03-01T09:00:00+05:30",
		EndTime:   "2026-03-01T12:00:00+05:30",
	})
	require.Error(t, err)

	webErr, ok := err.(*web.Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, webErr.Status)

	_, err = client.ListEvents(context.Background(), nil, nil)
	assert.Error(t, err)

	assert.Error(t, client.DeleteEvent(context.Background(), "evt1"))
}

func TestNewClientBadCredentialsFails(t *testing.T) {
	cfg := &config.Config{
		ServiceAccountPath: "testdata/does-not-exist.json",
		CalendarID:         "primary",
	}

	client := NewClient(context.Background(), cfg)

	assert.Equal(t, StateFailed, client.State())

	_, err := client.ListEvents(context.Background(), nil, nil)
	require.Error(t, err)
	webErr, ok := err.(*web.Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, webErr.Status)
}

func TestClientDefaultsTimezone(t *testing.T) {
	client := NewClient(context.Background(), &config.Config{})

	assert.Equal(t, "Asia/Kolkata", client.timezone)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unconfigured", StateUnconfigured.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
}

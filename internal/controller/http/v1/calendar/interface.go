package calendar

import (
	"context"

	"school/backend/internal/service/calendar"
)

type Calendar interface {
	State() calendar.State
	CreateEvent(ctx context.Context, event calendar.Event) (calendar.Event, error)
	ListEvents(ctx context.Context, timeMin, timeMax *string) ([]calendar.Event, error)
	UpdateEvent(ctx context.Context, event calendar.Event) (calendar.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

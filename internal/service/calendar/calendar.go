package calendar

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"school/backend/foundation/web"
	"school/backend/internal/pkg/config"
)

// State reports whether the calendar integration can be used. Resolved once
// at construction, every call checks it before touching the Google API.
type State int

const (
	StateUnconfigured State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unconfigured"
	}
}

type Event struct {
	ID          string  `json:"id,omitempty"`
	Summary     string  `json:"summary"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Category    *string `json:"category,omitempty"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
}

type Client struct {
	state      State
	initErr    error
	service    *gcalendar.Service
	calendarID string
	timezone   string
}

// NewClient builds the calendar integration from config. A missing service
// account path or calendar id leaves the client unconfigured rather than
// failing startup, the school runs fine without the calendar.
func NewClient(ctx context.Context, cfg *config.Config) *Client {
	client := &Client{
		calendarID: cfg.CalendarID,
		timezone:   cfg.Timezone,
	}
	if client.timezone == "" {
		client.timezone = "Asia/Kolkata"
	}

	if cfg.ServiceAccountPath == "" || cfg.CalendarID == "" {
		client.state = StateUnconfigured
		return client
	}

	service, err := gcalendar.NewService(ctx, option.WithCredentialsFile(cfg.ServiceAccountPath))
	if err != nil {
		client.state = StateFailed
		client.initErr = err
		return client
	}

	client.state = StateReady
	client.service = service
	return client
}

func (c *Client) State() State {
	return c.state
}

func (c *Client) ready() error {
	switch c.state {
	case StateReady:
		return nil
	case StateFailed:
		return web.NewRequestError(errors.Wrap(c.initErr, "calendar integration failed to initialize"), http.StatusServiceUnavailable)
	default:
		return web.NewRequestError(errors.New("calendar integration is not configured"), http.StatusServiceUnavailable)
	}
}

func (c *Client) CreateEvent(ctx context.Context, event Event) (Event, error) {
	if err := c.ready(); err != nil {
		return Event{}, err
	}
	if event.Summary == "" || event.StartTime == "" || event.EndTime == "" {
		return Event{}, web.NewRequestError(errors.New("summary, start_time and end_time are required"), http.StatusBadRequest)
	}

	created, err := c.service.Events.Insert(c.calendarID, c.toGoogle(event)).Context(ctx).Do()
	if err != nil {
		return Event{}, web.NewRequestError(errors.Wrap(err, "creating calendar event"), http.StatusBadGateway)
	}

	return c.fromGoogle(created), nil
}

func (c *Client) ListEvents(ctx context.Context, timeMin, timeMax *string) ([]Event, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	call := c.service.Events.List(c.calendarID).SingleEvents(true).OrderBy("startTime").Context(ctx)
	if timeMin != nil {
		call = call.TimeMin(*timeMin)
	}
	if timeMax != nil {
		call = call.TimeMax(*timeMax)
	}

	result, err := call.Do()
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "listing calendar events"), http.StatusBadGateway)
	}

	events := []Event{}
	for _, item := range result.Items {
		events = append(events, c.fromGoogle(item))
	}

	return events, nil
}

func (c *Client) UpdateEvent(ctx context.Context, event Event) (Event, error) {
	if err := c.ready(); err != nil {
		return Event{}, err
	}
	if event.ID == "" {
		return Event{}, web.NewRequestError(errors.New("event id is required"), http.StatusBadRequest)
	}
	if event.Summary == "" || event.StartTime == "" || event.EndTime == "" {
		return Event{}, web.NewRequestError(errors.New("summary, start_time and end_time are required"), http.StatusBadRequest)
	}

	updated, err := c.service.Events.Update(c.calendarID, event.ID, c.toGoogle(event)).Context(ctx).Do()
	if err != nil {
		return Event{}, web.NewRequestError(errors.Wrap(err, "updating calendar event"), http.StatusBadGateway)
	}

	return c.fromGoogle(updated), nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	if err := c.ready(); err != nil {
		return err
	}
	if id == "" {
		return web.NewRequestError(errors.New("event id is required"), http.StatusBadRequest)
	}

	if err := c.service.Events.Delete(c.calendarID, id).Context(ctx).Do(); err != nil {
		return web.NewRequestError(errors.Wrap(err, "deleting calendar event"), http.StatusBadGateway)
	}

	return nil
}

func (c *Client) toGoogle(event Event) *gcalendar.Event {
	out := &gcalendar.Event{
		Summary: event.Summary,
		Start:   &gcalendar.EventDateTime{DateTime: event.StartTime, TimeZone: c.timezone},
		End:     &gcalendar.EventDateTime{DateTime: event.EndTime, TimeZone: c.timezone},
	}
	if event.Description != nil {
		out.Description = *event.Description
	}
	if event.Location != nil {
		out.Location = *event.Location
	}
	if event.Category != nil {
		out.ExtendedProperties = &gcalendar.EventExtendedProperties{
			Private: map[string]string{"category": *event.Category},
		}
	}
	return out
}

func (c *Client) fromGoogle(item *gcalendar.Event) Event {
	event := Event{
		ID:      item.Id,
		Summary: item.Summary,
	}
	if item.Description != "" {
		event.Description = &item.Description
	}
	if item.Location != "" {
		event.Location = &item.Location
	}
	if item.Start != nil {
		event.StartTime = item.Start.DateTime
	}
	if item.End != nil {
		event.EndTime = item.End.DateTime
	}
	if item.ExtendedProperties != nil {
		if category, ok := item.ExtendedProperties.Private["category"]; ok {
			event.Category = &category
		}
	}
	return event
}

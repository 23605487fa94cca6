package calendar

import (
	"net/http"
	"reflect"

	"school/backend/foundation/web"
	"school/backend/internal/service/calendar"
)

type Controller struct {
	calendar Calendar
}

func NewController(calendar Calendar) *Controller {
	return &Controller{calendar}
}

func (uc Controller) GetStatus(c *web.Context) error {
	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"state": uc.calendar.State().String(),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) CreateEvent(c *web.Context) error {
	var event calendar.Event

	if err := c.BindFunc(&event, "Summary", "StartTime", "EndTime"); err != nil {
		return c.RespondError(err)
	}

	created, err := uc.calendar.CreateEvent(c.Ctx, event)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   created,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) ListEvents(c *web.Context) error {
	var timeMin, timeMax *string

	if value, ok := c.GetQueryFunc(reflect.String, "timeMin").(*string); ok {
		timeMin = value
	}
	if value, ok := c.GetQueryFunc(reflect.String, "timeMax").(*string); ok {
		timeMax = value
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	events, err := uc.calendar.ListEvents(c.Ctx, timeMin, timeMax)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": events,
			"count":   len(events),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateEvent(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var event calendar.Event
	if err := c.BindFunc(&event, "Summary", "StartTime", "EndTime"); err != nil {
		return c.RespondError(err)
	}
	event.ID = id

	updated, err := uc.calendar.UpdateEvent(c.Ctx, event)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   updated,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) DeleteEvent(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.calendar.DeleteEvent(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

package teacherattendance

import (
	"net/http"
	"reflect"

	"github.com/Azure/go-autorest/autorest/date"

	"school/backend/foundation/web"
	"school/backend/internal/repository/postgres/teacherattendance"
)

type Controller struct {
	teacherAttendance TeacherAttendance
}

func NewController(teacherAttendance TeacherAttendance) *Controller {
	return &Controller{teacherAttendance}
}

func (uc Controller) MarkBatch(c *web.Context) error {
	var request teacherattendance.MarkBatchRequest

	if err := c.BindFunc(&request, "AttendanceData"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.teacherAttendance.MarkBatch(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Update(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request teacherattendance.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := uc.teacherAttendance.Update(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.teacherAttendance.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetList(c *web.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.teacherAttendance.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetWithoutAttendance(c *web.Context) error {
	day, err := dayQuery(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, dateStr, err := uc.teacherAttendance.GetWithoutAttendance(c.Ctx, day)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
			"date":    dateStr,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDailySummary(c *web.Context) error {
	day, err := dayQuery(c)
	if err != nil {
		return c.RespondError(err)
	}

	response, err := uc.teacherAttendance.GetDailySummary(c.Ctx, day)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetPeriodSummary(c *web.Context) error {
	var request teacherattendance.PeriodRequest

	if value, ok := c.GetQueryFunc(reflect.String, "startDate").(*string); ok && value != nil {
		parsed, err := date.ParseDate(*value)
		if err != nil {
			return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
		}
		request.StartDate = &parsed
	}
	if value, ok := c.GetQueryFunc(reflect.String, "endDate").(*string); ok && value != nil {
		parsed, err := date.ParseDate(*value)
		if err != nil {
			return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
		}
		request.EndDate = &parsed
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.teacherAttendance.GetPeriodSummary(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetMonthlyReport(c *web.Context) error {
	var request teacherattendance.MonthRequest

	if month, ok := c.GetQueryFunc(reflect.Int, "month").(*int); ok && month != nil {
		request.Month = *month
	}
	if year, ok := c.GetQueryFunc(reflect.Int, "year").(*int); ok && year != nil {
		request.Year = *year
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.teacherAttendance.GetMonthlyReport(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetStatistics(c *web.Context) error {
	response, err := uc.teacherAttendance.GetStatistics(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetMySummary(c *web.Context) error {
	var request teacherattendance.MonthRequest

	if month, ok := c.GetQueryFunc(reflect.Int, "month").(*int); ok && month != nil {
		request.Month = *month
	}
	if year, ok := c.GetQueryFunc(reflect.Int, "year").(*int); ok && year != nil {
		request.Year = *year
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.teacherAttendance.GetMySummary(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetMyHistory(c *web.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.teacherAttendance.GetMyHistory(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetToday(c *web.Context) error {
	response, err := uc.teacherAttendance.GetToday(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func listFilter(c *web.Context) (teacherattendance.Filter, error) {
	var filter teacherattendance.Filter

	if value, ok := c.GetQueryFunc(reflect.String, "startDate").(*string); ok && value != nil {
		parsed, err := date.ParseDate(*value)
		if err != nil {
			return teacherattendance.Filter{}, web.NewRequestError(err, http.StatusBadRequest)
		}
		filter.StartDate = &parsed
	}
	if value, ok := c.GetQueryFunc(reflect.String, "endDate").(*string); ok && value != nil {
		parsed, err := date.ParseDate(*value)
		if err != nil {
			return teacherattendance.Filter{}, web.NewRequestError(err, http.StatusBadRequest)
		}
		filter.EndDate = &parsed
	}
	if teacherID, ok := c.GetQueryFunc(reflect.Int, "teacher_id").(*int); ok {
		filter.TeacherID = teacherID
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if subject, ok := c.GetQueryFunc(reflect.String, "subject").(*string); ok {
		filter.Subject = subject
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if err := c.ValidQuery(); err != nil {
		return teacherattendance.Filter{}, err
	}

	return filter, nil
}

func dayQuery(c *web.Context) (*date.Date, error) {
	var day *date.Date

	if value, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok && value != nil {
		parsed, err := date.ParseDate(*value)
		if err != nil {
			return nil, web.NewRequestError(err, http.StatusBadRequest)
		}
		day = &parsed
	}
	if err := c.ValidQuery(); err != nil {
		return nil, err
	}

	return day, nil
}

package attendance

import (
	"log"
	"net/http"
	"reflect"

	"github.com/Azure/go-autorest/autorest/date"

	"school/backend/foundation/web"
	"school/backend/internal/repository/postgres/attendance"
	"school/backend/internal/service/fingerprint"
)

type Controller struct {
	attendance Attendance
}

func NewController(attendance Attendance) *Controller {
	return &Controller{attendance}
}

func (uc Controller) MarkBatch(c *web.Context) error {
	var request attendance.MarkBatchRequest

	if err := c.BindFunc(&request, "AttendanceData"); err != nil {
		return c.RespondError(err)
	}

	log.Printf("attendance batch from device %s", fingerprint.FromRequest(c.Request))

	response, err := uc.attendance.MarkBatch(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetMonthlySummary(c *web.Context) error {
	request, err := monthRequest(c)
	if err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.GetMonthlySummary(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetChildrenSummaries(c *web.Context) error {
	request, err := monthRequest(c)
	if err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.GetChildrenSummaries(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ExportMonthly(c *web.Context) error {
	request, err := monthRequest(c)
	if err != nil {
		return c.RespondError(err)
	}

	data, fileName, err := uc.attendance.ExportMonthly(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondBytes("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", fileName, data)
}

func (uc Controller) GetDailySummary(c *web.Context) error {
	request, err := dailySummaryRequest(c)
	if err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.GetDailySummary(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ExportDailySummaryPDF(c *web.Context) error {
	request, err := dailySummaryRequest(c)
	if err != nil {
		return c.RespondError(err)
	}

	data, fileName, err := uc.attendance.ExportDailySummaryPDF(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondBytes("application/pdf", fileName, data)
}

func monthRequest(c *web.Context) (attendance.MonthRequest, error) {
	var request attendance.MonthRequest

	if month, ok := c.GetQueryFunc(reflect.Int, "month").(*int); ok && month != nil {
		request.Month = *month
	}
	if year, ok := c.GetQueryFunc(reflect.Int, "year").(*int); ok && year != nil {
		request.Year = *year
	}
	if err := c.ValidQuery(); err != nil {
		return attendance.MonthRequest{}, err
	}

	return request, nil
}

func dailySummaryRequest(c *web.Context) (attendance.DailySummaryRequest, error) {
	var request attendance.DailySummaryRequest

	if value, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok && value != nil {
		parsed, err := date.ParseDate(*value)
		if err != nil {
			return attendance.DailySummaryRequest{}, web.NewRequestError(err, http.StatusBadRequest)
		}
		request.Date = &parsed
	}
	if class, ok := c.GetQueryFunc(reflect.String, "class").(*string); ok {
		request.Class = class
	}
	if section, ok := c.GetQueryFunc(reflect.String, "section").(*string); ok {
		request.Section = section
	}
	if err := c.ValidQuery(); err != nil {
		return attendance.DailySummaryRequest{}, err
	}

	return request, nil
}

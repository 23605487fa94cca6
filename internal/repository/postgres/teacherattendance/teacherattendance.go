package teacherattendance

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/uptrace/bun/driver/pgdriver"

	"school/backend/foundation/web"
	"school/backend/internal/auth"
	"school/backend/internal/entity"
	"school/backend/internal/pkg/localdate"
	"school/backend/internal/pkg/repository/postgresql"
	"school/backend/internal/repository/postgres"
	"school/backend/internal/service/report"
)

type Repository struct {
	*postgresql.Database
	loc *time.Location
}

func NewRepository(database *postgresql.Database, loc *time.Location) *Repository {
	return &Repository{Database: database, loc: loc}
}

// MarkBatch applies one admin-submitted batch of teacher attendance. Same
// reconciliation as the student path; the response additionally carries a
// same-day summary recomputed from the full current state once the batch
// completes.
func (r Repository) MarkBatch(ctx context.Context, request MarkBatchRequest) (MarkBatchResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return MarkBatchResponse{}, err
	}

	planned, skipped := report.PlanBatch(request.AttendanceData, time.Now(), r.loc)

	count := 0
	for _, entry := range planned {
		applied, err := r.applyEntry(ctx, claims, entry)
		if err != nil {
			return MarkBatchResponse{}, err
		}
		if applied {
			count++
		} else {
			skipped = append(skipped, entry.SubjectID)
		}
	}

	summaryDay := localdate.At(time.Now(), r.loc)
	if len(planned) > 0 {
		summaryDay = planned[0].Day
	}

	summary, err := r.daySummary(ctx, summaryDay)
	if err != nil {
		return MarkBatchResponse{}, err
	}

	message := "No changes made"
	if count > 0 {
		message = "Attendance updated successfully"
	}

	if skipped == nil {
		skipped = []int{}
	}

	return MarkBatchResponse{
		Message:         message,
		Count:           count,
		SkippedTeachers: skipped,
		Summary:         summary,
	}, nil
}

func (r Repository) applyEntry(ctx context.Context, claims auth.Claims, entry report.PlannedEntry) (bool, error) {
	var existing entity.TeacherAttendance
	err := r.NewSelect().Model(&existing).
		Where("teacher_id = ? AND day >= ? AND day <= ? AND deleted_at IS NULL",
			entry.SubjectID, entry.Day.Start(), entry.Day.End()).
		Limit(1).
		Scan(ctx)

	if err == nil {
		return true, r.amendRecord(ctx, claims, existing, entry.Status, entry.Reason, nil, nil)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, web.NewRequestError(errors.Wrap(err, "selecting existing teacher attendance"), http.StatusInternalServerError)
	}

	exists, err := r.NewSelect().Model((*entity.Teacher)(nil)).
		Where("id = ? AND deleted_at IS NULL", entry.SubjectID).
		Exists(ctx)
	if err != nil {
		return false, web.NewRequestError(errors.Wrap(err, "selecting teacher"), http.StatusInternalServerError)
	}
	if !exists {
		log.Printf("skipping teacher %d: teacher not found", entry.SubjectID)
		return false, nil
	}

	row := createRow{
		TeacherID:    entry.SubjectID,
		Day:          entry.Day.Start(),
		Status:       entry.Status,
		Reason:       entry.Reason,
		MarkedBy:     claims.UserId,
		MarkedByRole: claims.Role,
		CreatedAt:    time.Now(),
		CreatedBy:    claims.UserId,
	}

	_, err = r.NewInsert().Model(&row).Returning("id").Exec(ctx, &row.ID)
	if err != nil {
		if isUniqueViolation(err) {
			var winner entity.TeacherAttendance
			if err := r.NewSelect().Model(&winner).
				Where("teacher_id = ? AND day >= ? AND day <= ? AND deleted_at IS NULL",
					entry.SubjectID, entry.Day.Start(), entry.Day.End()).
				Limit(1).
				Scan(ctx); err != nil {
				return false, web.NewRequestError(errors.Wrap(err, "re-selecting teacher attendance after conflict"), http.StatusInternalServerError)
			}
			return true, r.amendRecord(ctx, claims, winner, entry.Status, entry.Reason, nil, nil)
		}
		return false, web.NewRequestError(errors.Wrap(err, "creating teacher attendance"), http.StatusBadRequest)
	}

	return true, nil
}

// amendRecord overwrites status/reason and stamps the audit trail. The
// creation fields are left untouched; modification_reason defaults to a
// human readable description of the status change.
func (r Repository) amendRecord(ctx context.Context, claims auth.Claims, existing entity.TeacherAttendance, status, reason string, notes, modificationReason *string) error {
	originalStatus := ""
	if existing.Status != nil {
		originalStatus = *existing.Status
	}

	modReason := ""
	if modificationReason != nil && *modificationReason != "" {
		modReason = *modificationReason
	} else {
		modReason = fmt.Sprintf("status changed from %s to %s", originalStatus, status)
	}

	now := time.Now()

	q := r.NewUpdate().Table("teacher_attendance").Where("deleted_at IS NULL AND id = ?", existing.ID)
	q.Set("status = ?", status)
	q.Set("reason = ?", reason)
	if notes != nil {
		q.Set("notes = ?", notes)
	}
	q.Set("is_modified = true")
	q.Set("modified_by = ?", claims.UserId)
	q.Set("modified_at = ?", now)
	q.Set("modification_reason = ?", modReason)
	q.Set("updated_at = ?", now)
	q.Set("updated_by = ?", claims.UserId)

	if _, err := q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating teacher attendance"), http.StatusBadRequest)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}

// Update amends a single record out of band, keeping the audit trail.
func (r Repository) Update(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	var existing entity.TeacherAttendance
	err = r.NewSelect().Model(&existing).
		Where("id = ? AND deleted_at IS NULL", request.ID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting teacher attendance"), http.StatusInternalServerError)
	}

	status := ""
	if request.Status != nil {
		status = *request.Status
	} else if existing.Status != nil {
		status = *existing.Status
	}

	reason := ""
	if request.Reason != nil {
		reason = *request.Reason
	} else if existing.Reason != nil {
		reason = *existing.Reason
	}

	return r.amendRecord(ctx, claims, existing, status, reason, request.Notes, request.ModificationReason)
}

// Delete is the explicit admin removal, outside the normal submission flow.
func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "teacher_attendance", id)
}

// GetList returns records in a window with optional filters, newest first.
func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	return r.list(ctx, filter)
}

func (r Repository) list(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	whereQuery := `
			WHERE
				ta.deleted_at IS NULL
			`

	if filter.StartDate != nil && filter.EndDate != nil {
		start := localdate.At(filter.StartDate.ToTime(), r.loc)
		end := localdate.At(filter.EndDate.ToTime(), r.loc)
		whereQuery += fmt.Sprintf(" AND ta.day >= '%s' AND ta.day <= '%s'", start.Key(), end.Key())
	}
	if filter.TeacherID != nil {
		whereQuery += fmt.Sprintf(" AND ta.teacher_id = %d", *filter.TeacherID)
	}
	if filter.Status != nil {
		whereQuery += fmt.Sprintf(" AND ta.status = '%s'", strings.Replace(*filter.Status, "'", "''", -1))
	}
	if filter.Subject != nil {
		whereQuery += fmt.Sprintf(" AND t.subject = '%s'", strings.Replace(*filter.Subject, "'", "''", -1))
	}

	orderQuery := "ORDER BY ta.day desc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery = fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery = fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			ta.id,
			ta.teacher_id,
			t.name,
			t.subject,
			ta.day,
			ta.status,
			ta.reason,
			ta.notes,
			ta.is_modified,
			ta.modification_reason
		FROM teacher_attendance ta
		LEFT JOIN teachers t ON ta.teacher_id = t.id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting teacher attendance list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var (
			detail GetListResponse
			dayTS  time.Time
		)
		if err = rows.Scan(
			&detail.ID,
			&detail.TeacherID,
			&detail.TeacherName,
			&detail.Subject,
			&dayTS,
			&detail.Status,
			&detail.Reason,
			&detail.Notes,
			&detail.IsModified,
			&detail.ModificationReason); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning teacher attendance list"), http.StatusInternalServerError)
		}

		day := date.Date{Time: dayTS.In(r.loc)}
		detail.Day = &day

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(ta.id)
		FROM teacher_attendance ta
		LEFT JOIN teachers t ON ta.teacher_id = t.id
		%s
	`, whereQuery)

	count := 0
	if err := r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting teacher attendance"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// GetWithoutAttendance lists teachers with no record on the given day.
func (r Repository) GetWithoutAttendance(ctx context.Context, day *date.Date) ([]WithoutAttendanceResponse, string, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, "", err
	}

	target := localdate.At(time.Now(), r.loc)
	if day != nil {
		target = localdate.At(day.ToTime(), r.loc)
	}

	query := `
		SELECT
			t.id,
			t.name,
			t.subject
		FROM teachers t
		WHERE t.deleted_at IS NULL
			AND NOT EXISTS (
				SELECT 1 FROM teacher_attendance ta
				WHERE ta.teacher_id = t.id
					AND ta.deleted_at IS NULL
					AND ta.day >= $1 AND ta.day < $2
			)
		ORDER BY t.name
	`

	rows, err := r.QueryContext(ctx, query, target.Start(), target.Next().Start())
	if err != nil {
		return nil, "", web.NewRequestError(errors.Wrap(err, "selecting teachers without attendance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := []WithoutAttendanceResponse{}
	for rows.Next() {
		var detail WithoutAttendanceResponse
		if err := rows.Scan(&detail.TeacherID, &detail.Name, &detail.Subject); err != nil {
			return nil, "", web.NewRequestError(errors.Wrap(err, "scanning teachers without attendance"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	return list, target.Key(), nil
}

// GetDailySummary is the whole-roster rollup for one day: the denominator
// is the number of teachers on file, not days-with-records.
func (r Repository) GetDailySummary(ctx context.Context, day *date.Date) (DailySummaryResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return DailySummaryResponse{}, err
	}

	if day == nil {
		return DailySummaryResponse{}, web.NewRequestError(errors.New("date parameter is required"), http.StatusBadRequest)
	}

	target := localdate.At(day.ToTime(), r.loc)

	totalTeachers, err := r.NewSelect().Model((*entity.Teacher)(nil)).
		Where("deleted_at IS NULL").
		Count(ctx)
	if err != nil {
		return DailySummaryResponse{}, web.NewRequestError(errors.Wrap(err, "counting teachers"), http.StatusInternalServerError)
	}

	records, err := r.recordsInWindow(ctx, nil, target.Start(), target.Next().Start())
	if err != nil {
		return DailySummaryResponse{}, err
	}

	response := DailySummaryResponse{
		TotalTeachers: totalTeachers,
		Date:          target.Key(),
	}

	for _, rec := range records {
		switch rec.Status {
		case entity.StatusPresent:
			response.Presents++
		case entity.StatusAbsent:
			response.Absents++
		case entity.StatusLate:
			response.Late++
		case entity.StatusHalfDay:
			response.HalfDay++
		}
	}

	response.AttendancePercentage = report.RosterPercent(response.Presents, totalTeachers)

	return response, nil
}

// GetPeriodSummary aggregates a date window for the admin dashboard,
// defaulting to the last 30 days.
func (r Repository) GetPeriodSummary(ctx context.Context, request PeriodRequest) (PeriodSummaryResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return PeriodSummaryResponse{}, err
	}

	end := localdate.At(time.Now(), r.loc)
	start := localdate.At(end.Start().AddDate(0, 0, -30), r.loc)

	if request.StartDate != nil {
		start = localdate.At(request.StartDate.ToTime(), r.loc)
	}
	if request.EndDate != nil {
		end = localdate.At(request.EndDate.ToTime(), r.loc)
	}

	query := `
		SELECT
			count(ta.id) AS total,
			count(CASE WHEN ta.status = 'present' THEN 1 END) AS presents,
			count(CASE WHEN ta.status = 'absent' THEN 1 END) AS absents,
			count(CASE WHEN ta.status = 'late' THEN 1 END) AS late,
			count(CASE WHEN ta.status = 'half-day' THEN 1 END) AS half_day,
			count(CASE WHEN ta.is_modified THEN 1 END) AS modified
		FROM teacher_attendance ta
		WHERE ta.deleted_at IS NULL
			AND ta.day >= $1 AND ta.day <= $2
	`

	var response PeriodSummaryResponse
	err = r.QueryRowContext(ctx, query, start.Start(), end.End()).Scan(
		&response.TotalRecords,
		&response.PresentRecords,
		&response.AbsentRecords,
		&response.LateRecords,
		&response.HalfDayRecords,
		&response.ModifiedRecords,
	)
	if err != nil {
		return PeriodSummaryResponse{}, web.NewRequestError(errors.Wrap(err, "selecting period summary"), http.StatusInternalServerError)
	}

	response.AttendancePercentage = report.PeriodPercent(response.PresentRecords, response.TotalRecords)
	response.Period = map[string]string{
		"start": start.Key(),
		"end":   end.Key(),
	}

	return response, nil
}

// GetMonthlyReport folds every teacher's records for one month into one row
// per teacher, defaulting to the current month. Teachers without a record
// still get a row so the report covers the full roster.
func (r Repository) GetMonthlyReport(ctx context.Context, request MonthRequest) (MonthlyReportResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return MonthlyReportResponse{}, err
	}

	now := time.Now().In(r.loc)
	if request.Month == 0 {
		request.Month = int(now.Month())
	}
	if request.Year == 0 {
		request.Year = now.Year()
	}

	start, end := localdate.MonthWindow(request.Year, request.Month, r.loc)

	records, err := r.recordsInWindow(ctx, nil, start, end)
	if err != nil {
		return MonthlyReportResponse{}, err
	}

	summaries := report.FoldBySubject(records)

	rows, err := r.QueryContext(ctx, `
		SELECT t.id, t.name, t.subject
		FROM teachers t
		WHERE t.deleted_at IS NULL
		ORDER BY t.name
	`)
	if err != nil {
		return MonthlyReportResponse{}, web.NewRequestError(errors.Wrap(err, "selecting teachers"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := []MonthlyReportRow{}
	for rows.Next() {
		var row MonthlyReportRow
		if err := rows.Scan(&row.TeacherID, &row.Name, &row.Subject); err != nil {
			return MonthlyReportResponse{}, web.NewRequestError(errors.Wrap(err, "scanning teachers"), http.StatusInternalServerError)
		}

		summary := summaries[row.TeacherID]
		row.TotalDays = summary.TotalDays
		row.Presents = summary.Presents
		row.Absents = summary.Absents
		row.Late = summary.Late
		row.HalfDay = summary.HalfDay
		row.Percentage = report.Percent(summary.Presents, summary.TotalDays)

		list = append(list, row)
	}

	return MonthlyReportResponse{
		Rows: list,
		Period: ReportPeriod{
			Year:      request.Year,
			Month:     request.Month,
			MonthName: time.Month(request.Month).String(),
		},
	}, nil
}

// GetStatistics is the dashboard rollup: today and month-to-date counts
// over recorded entries, the roster size, and a per-day trend for the last
// seven days.
func (r Repository) GetStatistics(ctx context.Context) (StatisticsResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return StatisticsResponse{}, err
	}

	now := time.Now().In(r.loc)
	today := localdate.At(now, r.loc)
	upper := today.Next().Start()
	monthStart, _ := localdate.MonthWindow(now.Year(), int(now.Month()), r.loc)
	trendStart := localdate.At(today.Start().AddDate(0, 0, -7), r.loc)

	todayRecords, err := r.recordsInWindow(ctx, nil, today.Start(), upper)
	if err != nil {
		return StatisticsResponse{}, err
	}
	monthRecords, err := r.recordsInWindow(ctx, nil, monthStart, upper)
	if err != nil {
		return StatisticsResponse{}, err
	}
	trendRecords, err := r.recordsInWindow(ctx, nil, trendStart.Start(), upper)
	if err != nil {
		return StatisticsResponse{}, err
	}

	totalTeachers, err := r.NewSelect().Model((*entity.Teacher)(nil)).
		Where("deleted_at IS NULL").
		Count(ctx)
	if err != nil {
		return StatisticsResponse{}, web.NewRequestError(errors.Wrap(err, "counting teachers"), http.StatusInternalServerError)
	}

	todayTally := report.Count(todayRecords)
	monthTally := report.Count(monthRecords)

	return StatisticsResponse{
		Today: StatBlock{
			Tally:      todayTally,
			Percentage: report.RosterPercent(todayTally.Present, todayTally.Total),
		},
		Monthly: StatBlock{
			Tally:      monthTally,
			Percentage: report.RosterPercent(monthTally.Present, monthTally.Total),
		},
		TotalTeachers: totalTeachers,
		Trends:        report.Trend(trendRecords),
	}, nil
}

// GetMySummary folds the calling teacher's own records for a month into the
// detailed summary shape, audit trail included.
func (r Repository) GetMySummary(ctx context.Context, request MonthRequest) (SummaryResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleTeacher)
	if err != nil {
		return SummaryResponse{}, err
	}
	if claims.TeacherID == nil {
		return SummaryResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	if err := r.ValidateStruct(&request, "Month", "Year"); err != nil {
		return SummaryResponse{}, err
	}

	start, end := localdate.MonthWindow(request.Year, request.Month, r.loc)

	records, err := r.recordsInWindow(ctx, claims.TeacherID, start, end)
	if err != nil {
		return SummaryResponse{}, err
	}

	summary, details := report.FoldDetailed(records)

	return SummaryResponse{
		Month:       request.Month,
		Year:        request.Year,
		TotalDays:   summary.TotalDays,
		Presents:    summary.Presents,
		Absents:     summary.Absents,
		Late:        summary.Late,
		HalfDay:     summary.HalfDay,
		Percentage:  summary.Percentage,
		DailyStatus: details,
	}, nil
}

// GetMyHistory lists the calling teacher's own records, newest first.
func (r Repository) GetMyHistory(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleTeacher)
	if err != nil {
		return nil, 0, err
	}
	if claims.TeacherID == nil {
		return []GetListResponse{}, 0, nil
	}

	filter.TeacherID = claims.TeacherID

	return r.list(ctx, filter)
}

// GetToday returns the calling teacher's record for today, or nil without
// error when none exists yet.
func (r Repository) GetToday(ctx context.Context) (*entity.TeacherAttendance, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleTeacher)
	if err != nil {
		return nil, err
	}
	if claims.TeacherID == nil {
		return nil, nil
	}

	today := localdate.At(time.Now(), r.loc)

	var detail entity.TeacherAttendance
	err = r.NewSelect().Model(&detail).
		Where("teacher_id = ? AND day >= ? AND day < ? AND deleted_at IS NULL",
			*claims.TeacherID, today.Start(), today.Next().Start()).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting today's attendance"), http.StatusInternalServerError)
	}

	return &detail, nil
}

// daySummary recomputes the rollup for one day from the full current state.
func (r Repository) daySummary(ctx context.Context, day localdate.Day) (DaySummary, error) {
	records, err := r.recordsInWindow(ctx, nil, day.Start(), day.Next().Start())
	if err != nil {
		return DaySummary{}, err
	}

	summary := DaySummary{Total: len(records), Date: day.Key()}
	for _, rec := range records {
		switch rec.Status {
		case entity.StatusPresent:
			summary.Present++
		case entity.StatusAbsent:
			summary.Absent++
		case entity.StatusLate:
			summary.Late++
		case entity.StatusHalfDay:
			summary.HalfDay++
		}
	}

	return summary, nil
}

// recordsInWindow loads records with day in [start, end); teacherID nil
// means all teachers.
func (r Repository) recordsInWindow(ctx context.Context, teacherID *int, start, end time.Time) ([]report.Record, error) {
	whereQuery := "WHERE ta.deleted_at IS NULL AND ta.day >= $1 AND ta.day < $2"
	if teacherID != nil {
		whereQuery += fmt.Sprintf(" AND ta.teacher_id = %d", *teacherID)
	}

	query := fmt.Sprintf(`
		SELECT
			ta.teacher_id,
			ta.day,
			ta.status,
			ta.reason,
			ta.notes,
			ta.is_modified,
			ta.modified_at
		FROM teacher_attendance ta
		%s
		ORDER BY ta.day
	`, whereQuery)

	rows, err := r.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting teacher attendance window"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var records []report.Record
	for rows.Next() {
		var (
			record     report.Record
			day        time.Time
			reason     sql.NullString
			notes      sql.NullString
			modifiedAt sql.NullTime
		)
		if err := rows.Scan(&record.SubjectID, &day, &record.Status, &reason, &notes, &record.IsModified, &modifiedAt); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning teacher attendance window"), http.StatusInternalServerError)
		}

		record.Day = localdate.At(day, r.loc)
		record.Reason = reason.String
		record.Notes = notes.String
		if modifiedAt.Valid {
			t := modifiedAt.Time
			record.ModifiedAt = &t
		}

		records = append(records, record)
	}

	return records, nil
}

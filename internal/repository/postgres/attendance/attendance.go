package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
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
	redis *redis.Client
	loc   *time.Location
}

func NewRepository(database *postgresql.Database, redisDB *redis.Client, loc *time.Location) *Repository {
	return &Repository{Database: database, redis: redisDB, loc: loc}
}

// MarkBatch applies one submitted batch of student attendance. Entries are
// planned first (validation, day normalization, first-wins dedup), then each
// planned entry either amends the existing record for that student+day or
// creates a new one. A bad entry is skipped and counted, never aborting its
// siblings.
func (r Repository) MarkBatch(ctx context.Context, request MarkBatchRequest) (MarkBatchResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleTeacher)
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

	message := "No changes made"
	if count > 0 {
		message = "Attendance updated successfully"
	}

	if skipped == nil {
		skipped = []int{}
	}

	return MarkBatchResponse{Message: message, Count: count, SkippedStudents: skipped}, nil
}

func (r Repository) applyEntry(ctx context.Context, claims auth.Claims, entry report.PlannedEntry) (bool, error) {
	var existing entity.Attendance
	err := r.NewSelect().Model(&existing).
		Where("student_id = ? AND day >= ? AND day <= ? AND deleted_at IS NULL",
			entry.SubjectID, entry.Day.Start(), entry.Day.End()).
		Limit(1).
		Scan(ctx)

	if err == nil {
		return true, r.amendRecord(ctx, claims, existing.ID, entry)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, web.NewRequestError(errors.Wrap(err, "selecting existing attendance"), http.StatusInternalServerError)
	}

	var student entity.Student
	err = r.NewSelect().Model(&student).
		Where("id = ? AND deleted_at IS NULL", entry.SubjectID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		log.Printf("skipping student %d: student not found", entry.SubjectID)
		return false, nil
	}
	if err != nil {
		return false, web.NewRequestError(errors.Wrap(err, "selecting student"), http.StatusInternalServerError)
	}

	row := createRow{
		StudentID:    entry.SubjectID,
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
		// Two concurrent batches can race between the lookup and this
		// insert; the unique index turns the loser into an update.
		if isUniqueViolation(err) {
			var winner entity.Attendance
			if err := r.NewSelect().Model(&winner).
				Where("student_id = ? AND day >= ? AND day <= ? AND deleted_at IS NULL",
					entry.SubjectID, entry.Day.Start(), entry.Day.End()).
				Limit(1).
				Scan(ctx); err != nil {
				return false, web.NewRequestError(errors.Wrap(err, "re-selecting attendance after conflict"), http.StatusInternalServerError)
			}
			return true, r.amendRecord(ctx, claims, winner.ID, entry)
		}
		return false, web.NewRequestError(errors.Wrap(err, "creating attendance"), http.StatusBadRequest)
	}

	if entry.Status == entity.StatusAbsent {
		r.logAbsence(ctx, student)
	}

	return true, nil
}

func (r Repository) amendRecord(ctx context.Context, claims auth.Claims, id int, entry report.PlannedEntry) error {
	q := r.NewUpdate().Table("attendance").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("status = ?", entry.Status)
	q.Set("reason = ?", entry.Reason)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err := q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating attendance"), http.StatusBadRequest)
	}
	return nil
}

// logAbsence is a best-effort notification hook. A student without a
// guardian on file is logged, not an error.
func (r Repository) logAbsence(ctx context.Context, student entity.Student) {
	name := ""
	if student.Name != nil {
		name = *student.Name
	}

	if student.ParentID == nil {
		log.Printf("student %s marked absent, no parent record found", name)
		return
	}

	var parent entity.Parent
	err := r.NewSelect().Model(&parent).
		Where("id = ? AND deleted_at IS NULL", *student.ParentID).
		Scan(ctx)
	if err != nil {
		log.Printf("student %s marked absent, parent lookup failed: %v", name, err)
		return
	}

	parentName := ""
	if parent.Name != nil {
		parentName = *parent.Name
	}
	log.Printf("student %s marked absent, parent: %s", name, parentName)
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}

// GetMonthlySummary returns the calling student's own month aggregate.
func (r Repository) GetMonthlySummary(ctx context.Context, request MonthRequest) (MonthlySummaryResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleStudent)
	if err != nil {
		return MonthlySummaryResponse{}, err
	}
	if claims.StudentID == nil {
		return MonthlySummaryResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	if err := r.ValidateStruct(&request, "Month", "Year"); err != nil {
		return MonthlySummaryResponse{}, err
	}

	start, end := localdate.MonthWindow(request.Year, request.Month, r.loc)

	records, err := r.recordsInWindow(ctx, []int{*claims.StudentID}, start, end)
	if err != nil {
		return MonthlySummaryResponse{}, err
	}

	return MonthlySummaryResponse{
		Month:   request.Month,
		Year:    request.Year,
		Summary: report.Fold(records),
	}, nil
}

// GetChildrenSummaries returns one month aggregate per child of the calling
// parent. A parent with no linked children gets an empty list, not an error.
func (r Repository) GetChildrenSummaries(ctx context.Context, request MonthRequest) ([]ChildSummaryResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleParent)
	if err != nil {
		return nil, err
	}
	if claims.ParentID == nil {
		return []ChildSummaryResponse{}, nil
	}

	if err := r.ValidateStruct(&request, "Month", "Year"); err != nil {
		return nil, err
	}

	var children []entity.Student
	err = r.NewSelect().Model(&children).
		Where("parent_id = ? AND deleted_at IS NULL", *claims.ParentID).
		Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting children"), http.StatusInternalServerError)
	}

	start, end := localdate.MonthWindow(request.Year, request.Month, r.loc)

	list := []ChildSummaryResponse{}
	for _, child := range children {
		records, err := r.recordsInWindow(ctx, []int{child.ID}, start, end)
		if err != nil {
			return nil, err
		}

		list = append(list, ChildSummaryResponse{
			StudentID:   child.ID,
			StudentName: child.Name,
			Class:       child.Class,
			Section:     child.Section,
			Month:       request.Month,
			Year:        request.Year,
			Summary:     report.Fold(records),
		})
	}

	return list, nil
}

// ExportMonthly builds the month's tabular export for the caller's roster:
// one sheet per class-section, one column per calendar day of the month.
func (r Repository) ExportMonthly(ctx context.Context, request MonthRequest) ([]byte, string, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleTeacher)
	if err != nil {
		return nil, "", err
	}

	if err := r.ValidateStruct(&request, "Month", "Year"); err != nil {
		return nil, "", err
	}

	roster, err := r.roster(ctx, claims, nil, nil)
	if err != nil {
		return nil, "", err
	}

	start, end := localdate.MonthWindow(request.Year, request.Month, r.loc)
	days := localdate.Range(start, end, r.loc)

	ids := make([]int, len(roster))
	for i, subject := range roster {
		ids[i] = subject.ID
	}

	records, err := r.recordsInWindow(ctx, ids, start, end)
	if err != nil {
		return nil, "", err
	}

	grouped := report.GroupRows(roster, records, days)

	file, err := report.BuildMonthlyWorkbook(grouped, days)
	if err != nil {
		return nil, "", web.NewRequestError(errors.Wrap(err, "building workbook"), http.StatusInternalServerError)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, "", web.NewRequestError(errors.Wrap(err, "writing workbook"), http.StatusInternalServerError)
	}

	return buf.Bytes(), report.ExportFileName(request.Month, request.Year), nil
}

// GetDailySummary is the whole-roster same-day rollup. The denominator is
// the roster size, not days-with-records, so it answers "what fraction of
// the roster showed up today". Cached briefly per scope.
func (r Repository) GetDailySummary(ctx context.Context, request DailySummaryRequest) (DailySummaryResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleTeacher)
	if err != nil {
		return DailySummaryResponse{}, err
	}

	if request.Date == nil {
		return DailySummaryResponse{}, web.NewRequestError(errors.New("date parameter is required"), http.StatusBadRequest)
	}

	day := localdate.At(request.Date.ToTime(), r.loc)

	cacheKey := fmt.Sprintf("daily_summary:%s:%d:%s:%s", day.Key(), claims.UserId,
		strDeref(request.Class), strDeref(request.Section))
	if r.redis != nil {
		if cached, err := r.redis.Get(ctx, cacheKey).Result(); err == nil {
			var response DailySummaryResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				return response, nil
			}
		}
	}

	roster, err := r.roster(ctx, claims, request.Class, request.Section)
	if err != nil {
		return DailySummaryResponse{}, err
	}

	response := DailySummaryResponse{
		TotalStudents: len(roster),
		Date:          day.Key(),
	}

	if len(roster) > 0 {
		ids := make([]int, len(roster))
		for i, subject := range roster {
			ids[i] = subject.ID
		}

		records, err := r.recordsInWindow(ctx, ids, day.Start(), day.Next().Start())
		if err != nil {
			return DailySummaryResponse{}, err
		}

		for _, rec := range records {
			switch rec.Status {
			case entity.StatusPresent:
				response.Presents++
			case entity.StatusAbsent:
				response.Absents++
			}
		}
	}

	response.AttendancePercentage = report.RosterPercent(response.Presents, response.TotalStudents)

	if r.redis != nil {
		if data, err := json.Marshal(response); err == nil {
			r.redis.Set(ctx, cacheKey, data, time.Minute)
		}
	}

	return response, nil
}

// ExportDailySummaryPDF renders GetDailySummary as a one-page PDF.
func (r Repository) ExportDailySummaryPDF(ctx context.Context, request DailySummaryRequest) ([]byte, string, error) {
	summary, err := r.GetDailySummary(ctx, request)
	if err != nil {
		return nil, "", err
	}

	data, err := report.BuildDailySummaryPDF("Daily Attendance Summary", summary.Date, []report.DailyLine{
		{Label: "Total students", Value: fmt.Sprintf("%d", summary.TotalStudents)},
		{Label: "Present", Value: fmt.Sprintf("%d", summary.Presents)},
		{Label: "Absent", Value: fmt.Sprintf("%d", summary.Absents)},
		{Label: "Attendance", Value: fmt.Sprintf("%d%%", summary.AttendancePercentage)},
	})
	if err != nil {
		return nil, "", web.NewRequestError(errors.Wrap(err, "rendering daily summary pdf"), http.StatusInternalServerError)
	}

	return data, fmt.Sprintf("Daily-Summary-%s.pdf", summary.Date), nil
}

// roster resolves the subject set visible to the caller: admins see every
// student, teachers the union of their section assignments. Optional
// class/section narrow the result.
func (r Repository) roster(ctx context.Context, claims auth.Claims, class, section *string) ([]report.Subject, error) {
	var scopes []report.SectionScope

	switch claims.Role {
	case auth.RoleAdmin:
	case auth.RoleTeacher:
		if claims.TeacherID == nil {
			return []report.Subject{}, nil
		}
		var err error
		scopes, err = r.teacherScopes(ctx, *claims.TeacherID)
		if err != nil {
			return nil, err
		}
		if len(scopes) == 0 {
			return []report.Subject{}, nil
		}
	default:
		return nil, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
	}

	whereQuery := "WHERE s.deleted_at IS NULL"

	if class != nil && *class != "" && *class != "all" {
		whereQuery += fmt.Sprintf(" AND s.class = '%s'", strings.Replace(*class, "'", "''", -1))
	}
	if section != nil && *section != "" && *section != "all" {
		whereQuery += fmt.Sprintf(" AND s.section = '%s'", strings.Replace(*section, "'", "''", -1))
	}

	query := fmt.Sprintf(`
		SELECT
			s.id,
			s.name,
			s.class,
			s.section
		FROM students s
		%s
		ORDER BY s.class, s.section, s.name
	`, whereQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting roster"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var roster []report.Subject
	for rows.Next() {
		var subject report.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Class, &subject.Section); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning roster"), http.StatusInternalServerError)
		}
		if scopes != nil && !report.InScope(scopes, subject.Class, subject.Section) {
			continue
		}
		roster = append(roster, subject)
	}

	return roster, nil
}

// teacherScopes loads the caller's section assignments.
func (r Repository) teacherScopes(ctx context.Context, teacherID int) ([]report.SectionScope, error) {
	rows, err := r.QueryContext(ctx, `
		SELECT ts.class, ts.section
		FROM teacher_sections ts
		WHERE ts.teacher_id = $1
	`, teacherID)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting teacher sections"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var scopes []report.SectionScope
	for rows.Next() {
		var scope report.SectionScope
		if err := rows.Scan(&scope.Class, &scope.Section); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning teacher sections"), http.StatusInternalServerError)
		}
		scopes = append(scopes, scope)
	}

	return scopes, nil
}

// recordsInWindow loads the attendance rows for the given students with
// day in [start, end).
func (r Repository) recordsInWindow(ctx context.Context, studentIDs []int, start, end time.Time) ([]report.Record, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}

	idList := make([]string, len(studentIDs))
	for i, id := range studentIDs {
		idList[i] = fmt.Sprintf("%d", id)
	}

	query := fmt.Sprintf(`
		SELECT
			a.student_id,
			a.day,
			a.status,
			a.reason
		FROM attendance a
		WHERE a.deleted_at IS NULL
			AND a.student_id IN (%s)
			AND a.day >= $1 AND a.day < $2
		ORDER BY a.day
	`, strings.Join(idList, ", "))

	rows, err := r.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance window"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var records []report.Record
	for rows.Next() {
		var (
			record report.Record
			day    time.Time
			reason sql.NullString
		)
		if err := rows.Scan(&record.SubjectID, &day, &record.Status, &reason); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance window"), http.StatusInternalServerError)
		}

		record.Day = localdate.At(day, r.loc)
		record.Reason = reason.String

		records = append(records, record)
	}

	return records, nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

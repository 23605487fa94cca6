package teacherattendance

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"

	"school/backend/internal/service/report"
)

type MarkBatchRequest struct {
	AttendanceData []report.Entry `json:"attendanceData" validate:"required"`
}

// DaySummary is the same-day rollup recomputed from full current state
// after a batch completes.
type DaySummary struct {
	Total   int    `json:"total"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
	HalfDay int    `json:"halfDay"`
	Date    string `json:"date"`
}

type MarkBatchResponse struct {
	Message         string     `json:"message"`
	Count           int        `json:"count"`
	SkippedTeachers []int      `json:"skippedTeachers"`
	Summary         DaySummary `json:"summary"`
}

type Filter struct {
	StartDate *date.Date
	EndDate   *date.Date
	TeacherID *int
	Status    *string
	Subject   *string
	Page      *int
	Limit     *int
	Offset    *int
}

type GetListResponse struct {
	ID                 int        `json:"id"`
	TeacherID          *int       `json:"teacher_id"`
	TeacherName        *string    `json:"teacher_name"`
	Subject            *string    `json:"subject"`
	Day                *date.Date `json:"date"`
	Status             *string    `json:"status"`
	Reason             *string    `json:"reason"`
	Notes              *string    `json:"notes"`
	IsModified         bool       `json:"is_modified"`
	ModificationReason *string    `json:"modification_reason"`
}

type UpdateRequest struct {
	ID                 int     `json:"id" form:"id" validate:"required"`
	Status             *string `json:"status" form:"status"`
	Reason             *string `json:"reason" form:"reason"`
	Notes              *string `json:"notes" form:"notes"`
	ModificationReason *string `json:"modificationReason" form:"modificationReason"`
}

type MonthRequest struct {
	Month int `validate:"required"`
	Year  int `validate:"required"`
}

type SummaryResponse struct {
	Month       int                         `json:"month"`
	Year        int                         `json:"year"`
	TotalDays   int                         `json:"totalDays"`
	Presents    int                         `json:"presents"`
	Absents     int                         `json:"absents"`
	Late        int                         `json:"late"`
	HalfDay     int                         `json:"halfDay"`
	Percentage  string                      `json:"attendancePercentage"`
	DailyStatus map[string]report.DayDetail `json:"dailyStatus"`
}

type DailySummaryResponse struct {
	TotalTeachers        int    `json:"totalTeachers"`
	Presents             int    `json:"presents"`
	Absents              int    `json:"absents"`
	Late                 int    `json:"late"`
	HalfDay              int    `json:"halfDay"`
	AttendancePercentage int    `json:"attendancePercentage"`
	Date                 string `json:"date"`
}

type PeriodRequest struct {
	StartDate *date.Date
	EndDate   *date.Date
}

type PeriodSummaryResponse struct {
	TotalRecords         int               `json:"totalRecords"`
	PresentRecords       int               `json:"presentRecords"`
	AbsentRecords        int               `json:"absentRecords"`
	LateRecords          int               `json:"lateRecords"`
	HalfDayRecords       int               `json:"halfDayRecords"`
	ModifiedRecords      int               `json:"modifiedRecords"`
	AttendancePercentage float64           `json:"attendancePercentage"`
	Period               map[string]string `json:"period"`
}

type MonthlyReportRow struct {
	TeacherID  int     `json:"teacher_id"`
	Name       *string `json:"name"`
	Subject    *string `json:"subject"`
	TotalDays  int     `json:"totalDays"`
	Presents   int     `json:"presents"`
	Absents    int     `json:"absents"`
	Late       int     `json:"late"`
	HalfDay    int     `json:"halfDay"`
	Percentage string  `json:"attendancePercentage"`
}

type ReportPeriod struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"monthName"`
}

type MonthlyReportResponse struct {
	Rows   []MonthlyReportRow `json:"rows"`
	Period ReportPeriod       `json:"period"`
}

// StatBlock is one rollup of the dashboard statistics, counts plus the
// integer percentage over recorded entries.
type StatBlock struct {
	report.Tally
	Percentage int `json:"percentage"`
}

type StatisticsResponse struct {
	Today         StatBlock           `json:"today"`
	Monthly       StatBlock           `json:"monthly"`
	TotalTeachers int                 `json:"totalTeachers"`
	Trends        []report.TrendPoint `json:"trends"`
}

type WithoutAttendanceResponse struct {
	TeacherID int     `json:"teacher_id"`
	Name      *string `json:"name"`
	Subject   *string `json:"subject"`
}

type createRow struct {
	bun.BaseModel `bun:"table:teacher_attendance"`

	ID           int       `json:"id" bun:"-"`
	TeacherID    int       `json:"teacher_id" bun:"teacher_id"`
	Day          time.Time `json:"date" bun:"day"`
	Status       string    `json:"status" bun:"status"`
	Reason       string    `json:"reason" bun:"reason"`
	MarkedBy     int       `json:"-" bun:"marked_by"`
	MarkedByRole string    `json:"-" bun:"marked_by_role"`
	CreatedAt    time.Time `json:"-" bun:"created_at"`
	CreatedBy    int       `json:"-" bun:"created_by"`
}

package attendance

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"

	"school/backend/internal/service/report"
)

type MarkBatchRequest struct {
	AttendanceData []report.Entry `json:"attendanceData" validate:"required"`
}

type MarkBatchResponse struct {
	Message         string `json:"message"`
	Count           int    `json:"count"`
	SkippedStudents []int  `json:"skippedStudents"`
}

type MonthRequest struct {
	Month int `validate:"required"`
	Year  int `validate:"required"`
}

type MonthlySummaryResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	report.Summary
}

type ChildSummaryResponse struct {
	StudentID   int     `json:"studentId"`
	StudentName *string `json:"studentName"`
	Class       *string `json:"class"`
	Section     *string `json:"section"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	report.Summary
}

type DailySummaryRequest struct {
	Date    *date.Date
	Class   *string
	Section *string
}

type DailySummaryResponse struct {
	TotalStudents        int    `json:"totalStudents"`
	Presents             int    `json:"presents"`
	Absents              int    `json:"absents"`
	AttendancePercentage int    `json:"attendancePercentage"`
	Date                 string `json:"date"`
}

type createRow struct {
	bun.BaseModel `bun:"table:attendance"`

	ID           int       `json:"id" bun:"-"`
	StudentID    int       `json:"student_id" bun:"student_id"`
	Day          time.Time `json:"date" bun:"day"`
	Status       string    `json:"status" bun:"status"`
	Reason       string    `json:"reason" bun:"reason"`
	MarkedBy     int       `json:"-" bun:"marked_by"`
	MarkedByRole string    `json:"-" bun:"marked_by_role"`
	CreatedAt    time.Time `json:"-" bun:"created_at"`
	CreatedBy    int       `json:"-" bun:"created_by"`
}

package teacherattendance

import (
	"context"

	"github.com/Azure/go-autorest/autorest/date"

	"school/backend/internal/entity"
	"school/backend/internal/repository/postgres/teacherattendance"
)

type TeacherAttendance interface {
	MarkBatch(ctx context.Context, request teacherattendance.MarkBatchRequest) (teacherattendance.MarkBatchResponse, error)
	Update(ctx context.Context, request teacherattendance.UpdateRequest) error
	Delete(ctx context.Context, id int) error
	GetList(ctx context.Context, filter teacherattendance.Filter) ([]teacherattendance.GetListResponse, int, error)
	GetWithoutAttendance(ctx context.Context, day *date.Date) ([]teacherattendance.WithoutAttendanceResponse, string, error)
	GetDailySummary(ctx context.Context, day *date.Date) (teacherattendance.DailySummaryResponse, error)
	GetPeriodSummary(ctx context.Context, request teacherattendance.PeriodRequest) (teacherattendance.PeriodSummaryResponse, error)
	GetMonthlyReport(ctx context.Context, request teacherattendance.MonthRequest) (teacherattendance.MonthlyReportResponse, error)
	GetStatistics(ctx context.Context) (teacherattendance.StatisticsResponse, error)
	GetMySummary(ctx context.Context, request teacherattendance.MonthRequest) (teacherattendance.SummaryResponse, error)
	GetMyHistory(ctx context.Context, filter teacherattendance.Filter) ([]teacherattendance.GetListResponse, int, error)
	GetToday(ctx context.Context) (*entity.TeacherAttendance, error)
}

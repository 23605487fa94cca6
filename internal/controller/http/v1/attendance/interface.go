package attendance

import (
	"context"

	"school/backend/internal/repository/postgres/attendance"
)

type Attendance interface {
	MarkBatch(ctx context.Context, request attendance.MarkBatchRequest) (attendance.MarkBatchResponse, error)
	GetMonthlySummary(ctx context.Context, request attendance.MonthRequest) (attendance.MonthlySummaryResponse, error)
	GetChildrenSummaries(ctx context.Context, request attendance.MonthRequest) ([]attendance.ChildSummaryResponse, error)
	ExportMonthly(ctx context.Context, request attendance.MonthRequest) ([]byte, string, error)
	GetDailySummary(ctx context.Context, request attendance.DailySummaryRequest) (attendance.DailySummaryResponse, error)
	ExportDailySummaryPDF(ctx context.Context, request attendance.DailySummaryRequest) ([]byte, string, error)
}

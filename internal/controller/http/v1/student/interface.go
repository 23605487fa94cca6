package student

import (
	"context"

	"school/backend/internal/repository/postgres/student"
)

type Student interface {
	GetList(ctx context.Context, filter student.Filter) ([]student.GetListResponse, int, error)
	Create(ctx context.Context, request student.CreateRequest) (student.CreateResponse, error)
	UpdateColumns(ctx context.Context, request student.UpdateRequest) error
	Delete(ctx context.Context, id int) error
	GetQrCode(ctx context.Context, id int) ([]byte, error)
}

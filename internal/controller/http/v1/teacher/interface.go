package teacher

import (
	"context"

	"school/backend/internal/repository/postgres/teacher"
)

type Teacher interface {
	GetList(ctx context.Context, filter teacher.Filter) ([]teacher.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (teacher.GetDetailByIdResponse, error)
	Create(ctx context.Context, request teacher.CreateRequest) (teacher.CreateResponse, error)
	UpdateColumns(ctx context.Context, request teacher.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}

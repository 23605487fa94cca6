package parent

import (
	"context"

	"school/backend/internal/repository/postgres/parent"
)

type Parent interface {
	GetList(ctx context.Context, filter parent.Filter) ([]parent.GetListResponse, int, error)
	Count(ctx context.Context) (int, error)
	GetWithChildren(ctx context.Context, id int) (parent.GetWithChildrenResponse, error)
	CreateWithChildren(ctx context.Context, request parent.CreateWithChildrenRequest) (parent.GetWithChildrenResponse, error)
	AddChild(ctx context.Context, request parent.AddChildRequest) error
}

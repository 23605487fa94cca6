package user

import (
	"context"

	"school/backend/internal/repository/postgres/user"
)

type User interface {
	Create(ctx context.Context, request user.CreateRequest) (user.CreateResponse, error)
}

package auth

import (
	"context"

	"school/backend/internal/entity"
	"school/backend/internal/repository/postgres/user"
)

type User interface {
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	ResolveSubject(ctx context.Context, userID int, role string) (user.AuthClaims, error)
}

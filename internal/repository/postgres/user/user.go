package user

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"school/backend/foundation/web"
	"school/backend/internal/auth"
	"school/backend/internal/entity"
	"school/backend/internal/pkg/repository/postgresql"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var detail entity.User
	err := r.NewSelect().Model(&detail).Where("email = ? AND deleted_at IS NULL", email).Scan(ctx)
	if err != nil {
		return entity.User{}, &web.Error{
			Err:    errors.New("user not found"),
			Status: http.StatusUnauthorized,
		}
	}

	return detail, nil
}

// ResolveSubject finds the student, teacher or parent record linked to the
// user, depending on the role. The links ride inside the token claims so
// repositories never look them up again.
func (r Repository) ResolveSubject(ctx context.Context, userID int, role string) (AuthClaims, error) {
	claims := AuthClaims{ID: userID, Role: role}

	var table string
	var target **int
	switch role {
	case auth.RoleStudent:
		table, target = "students", &claims.StudentID
	case auth.RoleTeacher:
		table, target = "teachers", &claims.TeacherID
	case auth.RoleParent:
		table, target = "parents", &claims.ParentID
	default:
		return claims, nil
	}

	var id int
	err := r.QueryRowContext(ctx,
		"SELECT id FROM "+table+" WHERE user_id = $1 AND deleted_at IS NULL", userID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return claims, nil
	}
	if err != nil {
		return AuthClaims{}, web.NewRequestError(errors.Wrap(err, "resolving subject link"), http.StatusInternalServerError)
	}

	*target = &id
	return claims, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Email", "Name", "Password", "Role"); err != nil {
		return CreateResponse{}, err
	}

	role := *request.Role
	if role != auth.RoleAdmin && role != auth.RoleTeacher && role != auth.RoleStudent && role != auth.RoleParent {
		return CreateResponse{}, web.NewRequestError(errors.Errorf("unknown role: %s", role), http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	password := string(hash)

	response := CreateResponse{
		Email:     request.Email,
		Name:      request.Name,
		Password:  &password,
		Role:      request.Role,
		CreatedAt: time.Now(),
		CreatedBy: claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusBadRequest)
	}

	return response, nil
}

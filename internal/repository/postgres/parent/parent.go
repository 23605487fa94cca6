package parent

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"school/backend/foundation/web"
	"school/backend/internal/auth"
	"school/backend/internal/entity"
	"school/backend/internal/pkg/repository/postgresql"
	"school/backend/internal/repository/postgres"
	"school/backend/internal/repository/postgres/student"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
			WHERE
				p.deleted_at IS NULL
			`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND
		(p.name ilike '%s' OR p.email ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}

	orderQuery := "ORDER BY p.name"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery = fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery = fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			p.id,
			p.name,
			p.email,
			p.phone
		FROM parents p
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting parents"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(&detail.ID, &detail.Name, &detail.Email, &detail.Phone); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning parent list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(p.id)
		FROM parents p
		%s
	`, whereQuery)

	count := 0
	if err := r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting parents"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Count(ctx context.Context) (int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return 0, err
	}

	count, err := r.NewSelect().Model((*entity.Parent)(nil)).
		Where("deleted_at IS NULL").
		Count(ctx)
	if err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "counting parents"), http.StatusInternalServerError)
	}

	return count, nil
}

// GetWithChildren returns a parent and the students linked to it.
func (r Repository) GetWithChildren(ctx context.Context, id int) (GetWithChildrenResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return GetWithChildrenResponse{}, err
	}

	var detail entity.Parent
	err = r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return GetWithChildrenResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetWithChildrenResponse{}, web.NewRequestError(errors.Wrap(err, "selecting parent"), http.StatusInternalServerError)
	}

	children, err := r.children(ctx, id)
	if err != nil {
		return GetWithChildrenResponse{}, err
	}

	return GetWithChildrenResponse{
		ID:       detail.ID,
		Name:     detail.Name,
		Email:    detail.Email,
		Phone:    detail.Phone,
		Children: children,
	}, nil
}

// CreateWithChildren creates a parent and its children in one go.
func (r Repository) CreateWithChildren(ctx context.Context, request CreateWithChildrenRequest) (GetWithChildrenResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return GetWithChildrenResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Name"); err != nil {
		return GetWithChildrenResponse{}, err
	}

	response := CreateResponse{
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
		CreatedAt: time.Now(),
		CreatedBy: claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return GetWithChildrenResponse{}, web.NewRequestError(errors.Wrap(err, "creating parent"), http.StatusBadRequest)
	}

	for _, child := range request.Children {
		row := entity.Student{
			StudentID: child.StudentID,
			Name:      child.Name,
			Class:     child.Class,
			Section:   child.Section,
			ParentID:  &response.ID,
		}
		row.CreatedAt = time.Now()
		row.CreatedBy = &claims.UserId

		if _, err := r.NewInsert().Model(&row).Exec(ctx); err != nil {
			return GetWithChildrenResponse{}, web.NewRequestError(errors.Wrap(err, "creating child"), http.StatusBadRequest)
		}
	}

	return r.GetWithChildren(ctx, response.ID)
}

// AddChild links an existing student to an existing parent.
func (r Repository) AddChild(ctx context.Context, request AddChildRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "StudentID"); err != nil {
		return err
	}

	exists, err := r.NewSelect().Model((*entity.Parent)(nil)).
		Where("id = ? AND deleted_at IS NULL", request.ParentID).
		Exists(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting parent"), http.StatusInternalServerError)
	}
	if !exists {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	q := r.NewUpdate().Table("students").Where("deleted_at IS NULL AND id = ?", *request.StudentID)
	q.Set("parent_id = ?", request.ParentID)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "linking child"), http.StatusBadRequest)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

func (r Repository) children(ctx context.Context, parentID int) ([]student.GetListResponse, error) {
	query := fmt.Sprintf(`
		SELECT
			s.id,
			s.student_id,
			s.name,
			s.class,
			s.section,
			s.parent_id
		FROM students s
		WHERE s.deleted_at IS NULL AND s.parent_id = %d
		ORDER BY s.name
	`, parentID)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting children"), http.StatusInternalServerError)
	}
	defer rows.Close()

	children := []student.GetListResponse{}
	for rows.Next() {
		var child student.GetListResponse
		if err := rows.Scan(&child.ID, &child.StudentID, &child.Name, &child.Class, &child.Section, &child.ParentID); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning children"), http.StatusInternalServerError)
		}
		children = append(children, child)
	}

	return children, nil
}

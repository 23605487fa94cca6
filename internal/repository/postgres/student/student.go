package student

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"

	"school/backend/foundation/web"
	"school/backend/internal/auth"
	"school/backend/internal/entity"
	"school/backend/internal/pkg/repository/postgresql"
	"school/backend/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Student, error) {
	var detail entity.Student

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)

	return detail, err
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleTeacher)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
			WHERE
				s.deleted_at IS NULL
			`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND
		(s.student_id ilike '%s' OR s.name ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}
	if filter.Class != nil {
		whereQuery += fmt.Sprintf(" AND s.class = '%s'", strings.Replace(*filter.Class, "'", "''", -1))
	}
	if filter.Section != nil {
		whereQuery += fmt.Sprintf(" AND s.section = '%s'", strings.Replace(*filter.Section, "'", "''", -1))
	}

	orderQuery := "ORDER BY s.class, s.section, s.name"

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
			s.id,
			s.student_id,
			s.name,
			s.class,
			s.section,
			s.parent_id
		FROM students s
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting students"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.StudentID,
			&detail.Name,
			&detail.Class,
			&detail.Section,
			&detail.ParentID); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning student list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(s.id)
		FROM students s
		%s
	`, whereQuery)

	count := 0
	if err := r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting students"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "StudentID", "Name", "Class", "Section"); err != nil {
		return CreateResponse{}, err
	}

	inUse := true
	if err := r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT
						CASE WHEN
						(SELECT id FROM students WHERE student_id = '%s' AND deleted_at IS NULL) IS NOT NULL
						THEN true ELSE false END`,
			strings.Replace(*request.StudentID, "'", "''", -1))).Scan(&inUse); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "student_id check"), http.StatusInternalServerError)
	}
	if inUse {
		return CreateResponse{}, web.NewRequestError(errors.New("student_id is used"), http.StatusBadRequest)
	}

	response := CreateResponse{
		StudentID: request.StudentID,
		Name:      request.Name,
		Class:     request.Class,
		Section:   request.Section,
		ParentID:  request.ParentID,
		CreatedAt: time.Now(),
		CreatedBy: claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating student"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("students").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.StudentID != nil {
		q.Set("student_id = ?", request.StudentID)
	}
	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.Class != nil {
		q.Set("class = ?", request.Class)
	}
	if request.Section != nil {
		q.Set("section = ?", request.Section)
	}
	if request.ParentID != nil {
		q.Set("parent_id = ?", request.ParentID)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating student"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "students", id)
}

// GetQrCode renders the student's external id as a PNG QR code for id
// cards.
func (r Repository) GetQrCode(ctx context.Context, id int) ([]byte, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	detail, err := r.GetById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting student"), http.StatusInternalServerError)
	}

	if detail.StudentID == nil {
		return nil, web.NewRequestError(errors.New("student has no external id"), http.StatusBadRequest)
	}

	png, err := qrcode.Encode(*detail.StudentID, qrcode.Medium, 256)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "encoding qr code"), http.StatusInternalServerError)
	}

	return png, nil
}

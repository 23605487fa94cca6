package teacher

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
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Teacher, error) {
	var detail entity.Teacher

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)

	return detail, err
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
			WHERE
				t.deleted_at IS NULL
			`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND
		(t.teacher_id ilike '%s' OR t.name ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}
	if filter.Subject != nil {
		whereQuery += fmt.Sprintf(" AND t.subject = '%s'", strings.Replace(*filter.Subject, "'", "''", -1))
	}

	orderQuery := "ORDER BY t.name"

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
			t.id,
			t.teacher_id,
			t.name,
			t.subject
		FROM teachers t
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting teachers"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(&detail.ID, &detail.TeacherID, &detail.Name, &detail.Subject); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning teacher list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(t.id)
		FROM teachers t
		%s
	`, whereQuery)

	count := 0
	if err := r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting teachers"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	detail, err := r.GetById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting teacher"), http.StatusInternalServerError)
	}

	sections, err := r.sections(ctx, id)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	return GetDetailByIdResponse{
		ID:        detail.ID,
		TeacherID: detail.TeacherID,
		Name:      detail.Name,
		Subject:   detail.Subject,
		Sections:  sections,
	}, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "TeacherID", "Name"); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		TeacherID: request.TeacherID,
		Name:      request.Name,
		Subject:   request.Subject,
		UserID:    request.UserID,
		CreatedAt: time.Now(),
		CreatedBy: claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating teacher"), http.StatusBadRequest)
	}

	if err := r.replaceSections(ctx, response.ID, request.Sections); err != nil {
		return CreateResponse{}, err
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

	q := r.NewUpdate().Table("teachers").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.Subject != nil {
		q.Set("subject = ?", request.Subject)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating teacher"), http.StatusBadRequest)
	}

	if request.Sections != nil {
		if err := r.replaceSections(ctx, request.ID, *request.Sections); err != nil {
			return err
		}
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "teachers", id)
}

func (r Repository) sections(ctx context.Context, teacherID int) ([]SectionAssignment, error) {
	var rows []entity.TeacherSection
	err := r.NewSelect().Model(&rows).
		Where("teacher_id = ?", teacherID).
		Order("class", "section").
		Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting teacher sections"), http.StatusInternalServerError)
	}

	sections := []SectionAssignment{}
	for _, row := range rows {
		assignment := SectionAssignment{}
		if row.Class != nil {
			assignment.Class = *row.Class
		}
		if row.Section != nil {
			assignment.Section = *row.Section
		}
		sections = append(sections, assignment)
	}

	return sections, nil
}

func (r Repository) replaceSections(ctx context.Context, teacherID int, sections []SectionAssignment) error {
	if _, err := r.NewDelete().Model((*entity.TeacherSection)(nil)).
		Where("teacher_id = ?", teacherID).
		Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "clearing teacher sections"), http.StatusInternalServerError)
	}

	if len(sections) == 0 {
		return nil
	}

	rows := make([]entity.TeacherSection, len(sections))
	for i, section := range sections {
		class, sec := section.Class, section.Section
		rows[i] = entity.TeacherSection{
			TeacherID: &teacherID,
			Class:     &class,
			Section:   &sec,
		}
	}

	if _, err := r.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "inserting teacher sections"), http.StatusInternalServerError)
	}

	return nil
}

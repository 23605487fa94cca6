package teacher

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit   *int
	Offset  *int
	Page    *int
	Search  *string
	Subject *string
}

type SectionAssignment struct {
	Class   string `json:"class" form:"class"`
	Section string `json:"section" form:"section"`
}

type GetListResponse struct {
	ID        int     `json:"id"`
	TeacherID *string `json:"teacher_id"`
	Name      *string `json:"name"`
	Subject   *string `json:"subject"`
}

type GetDetailByIdResponse struct {
	ID        int                 `json:"id"`
	TeacherID *string             `json:"teacher_id"`
	Name      *string             `json:"name"`
	Subject   *string             `json:"subject"`
	Sections  []SectionAssignment `json:"sectionAssignments"`
}

type CreateRequest struct {
	TeacherID *string             `json:"teacher_id" form:"teacher_id" validate:"required"`
	Name      *string             `json:"name" form:"name" validate:"required"`
	Subject   *string             `json:"subject" form:"subject"`
	UserID    *int                `json:"user_id" form:"user_id"`
	Sections  []SectionAssignment `json:"sectionAssignments" form:"sectionAssignments"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:teachers"`

	ID        int       `json:"id" bun:"-"`
	TeacherID *string   `json:"teacher_id" bun:"teacher_id"`
	Name      *string   `json:"name" bun:"name"`
	Subject   *string   `json:"subject" bun:"subject"`
	UserID    *int      `json:"user_id" bun:"user_id"`
	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID       int                  `json:"id" form:"id" validate:"required"`
	Name     *string              `json:"name" form:"name"`
	Subject  *string              `json:"subject" form:"subject"`
	Sections *[]SectionAssignment `json:"sectionAssignments" form:"sectionAssignments"`
}

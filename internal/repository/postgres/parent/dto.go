package parent

import (
	"time"

	"github.com/uptrace/bun"

	"school/backend/internal/repository/postgres/student"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID    int     `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type GetWithChildrenResponse struct {
	ID       int                       `json:"id"`
	Name     *string                   `json:"name"`
	Email    *string                   `json:"email"`
	Phone    *string                   `json:"phone"`
	Children []student.GetListResponse `json:"children"`
}

type ChildRequest struct {
	StudentID *string `json:"student_id" form:"student_id" validate:"required"`
	Name      *string `json:"name" form:"name" validate:"required"`
	Class     *string `json:"class" form:"class" validate:"required"`
	Section   *string `json:"section" form:"section" validate:"required"`
}

type CreateWithChildrenRequest struct {
	Name     *string        `json:"name" form:"name" validate:"required"`
	Email    *string        `json:"email" form:"email"`
	Phone    *string        `json:"phone" form:"phone"`
	Children []ChildRequest `json:"children" form:"children"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:parents"`

	ID        int       `json:"id" bun:"-"`
	Name      *string   `json:"name" bun:"name"`
	Email     *string   `json:"email" bun:"email"`
	Phone     *string   `json:"phone" bun:"phone"`
	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type AddChildRequest struct {
	ParentID  int  `json:"-"`
	StudentID *int `json:"student_id" form:"student_id" validate:"required"`
}

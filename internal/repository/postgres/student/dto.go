package student

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit   *int
	Offset  *int
	Page    *int
	Search  *string
	Class   *string
	Section *string
}

type GetListResponse struct {
	ID        int     `json:"id"`
	StudentID *string `json:"student_id"`
	Name      *string `json:"name"`
	Class     *string `json:"class"`
	Section   *string `json:"section"`
	ParentID  *int    `json:"parent_id"`
}

type CreateRequest struct {
	StudentID *string `json:"student_id" form:"student_id" validate:"required"`
	Name      *string `json:"name" form:"name" validate:"required"`
	Class     *string `json:"class" form:"class" validate:"required"`
	Section   *string `json:"section" form:"section" validate:"required"`
	ParentID  *int    `json:"parent_id" form:"parent_id"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:students"`

	ID        int       `json:"id" bun:"-"`
	StudentID *string   `json:"student_id" bun:"student_id"`
	Name      *string   `json:"name" bun:"name"`
	Class     *string   `json:"class" bun:"class"`
	Section   *string   `json:"section" bun:"section"`
	ParentID  *int      `json:"parent_id" bun:"parent_id"`
	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID        int     `json:"id" form:"id" validate:"required"`
	StudentID *string `json:"student_id" form:"student_id"`
	Name      *string `json:"name" form:"name"`
	Class     *string `json:"class" form:"class"`
	Section   *string `json:"section" form:"section"`
	ParentID  *int    `json:"parent_id" form:"parent_id"`
}

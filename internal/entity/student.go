package entity

import (
	"github.com/uptrace/bun"
)

type Student struct {
	bun.BaseModel `bun:"table:students"`

	BasicEntity
	StudentID *string `json:"student_id" bun:"student_id"`
	Name      *string `json:"name"       bun:"name"`
	Class     *string `json:"class"      bun:"class"`
	Section   *string `json:"section"    bun:"section"`
	ParentID  *int    `json:"parent_id"  bun:"parent_id"`
	UserID    *int    `json:"user_id"    bun:"user_id"`
}

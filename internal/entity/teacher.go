package entity

import (
	"github.com/uptrace/bun"
)

type Teacher struct {
	bun.BaseModel `bun:"table:teachers"`

	BasicEntity
	TeacherID *string `json:"teacher_id" bun:"teacher_id"`
	UserID    *int    `json:"user_id"    bun:"user_id"`
	Name      *string `json:"name"       bun:"name"`
	Subject   *string `json:"subject"    bun:"subject"`
}

// TeacherSection is one class+section assignment. A teacher may hold any
// number of them; scoping unions all of a teacher's rows.
type TeacherSection struct {
	bun.BaseModel `bun:"table:teacher_sections"`

	ID        int     `json:"id" bun:"id,pk,autoincrement"`
	TeacherID *int    `json:"teacher_id" bun:"teacher_id"`
	Class     *string `json:"class"      bun:"class"`
	Section   *string `json:"section"    bun:"section"`
}

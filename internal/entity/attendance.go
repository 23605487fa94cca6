package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Attendance status values. "absent" is the only status that carries a
// reason.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusHalfDay = "half-day"
)

// Attendance is one student's record for one calendar day. At most one row
// exists per (student_id, day); resubmissions mutate the row in place.
type Attendance struct {
	bun.BaseModel `bun:"table:attendance"`

	BasicEntity
	StudentID    *int       `json:"student_id" bun:"student_id"`
	Day          *time.Time `json:"date"       bun:"day"`
	Status       *string    `json:"status"     bun:"status"`
	Reason       *string    `json:"reason"     bun:"reason"`
	MarkedBy     *int       `json:"marked_by"      bun:"marked_by"`
	MarkedByRole *string    `json:"marked_by_role" bun:"marked_by_role"`
}

// TeacherAttendance mirrors Attendance for teachers and additionally keeps
// an audit trail for updates after creation.
type TeacherAttendance struct {
	bun.BaseModel `bun:"table:teacher_attendance"`

	BasicEntity
	TeacherID    *int       `json:"teacher_id" bun:"teacher_id"`
	Day          *time.Time `json:"date"       bun:"day"`
	Status       *string    `json:"status"     bun:"status"`
	Reason       *string    `json:"reason"     bun:"reason"`
	Notes        *string    `json:"notes"      bun:"notes"`
	MarkedBy     *int       `json:"marked_by"      bun:"marked_by"`
	MarkedByRole *string    `json:"marked_by_role" bun:"marked_by_role"`

	IsModified         bool       `json:"is_modified"         bun:"is_modified"`
	ModifiedBy         *int       `json:"modified_by"         bun:"modified_by"`
	ModifiedAt         *time.Time `json:"modified_at"         bun:"modified_at"`
	ModificationReason *string    `json:"modification_reason" bun:"modification_reason"`
}

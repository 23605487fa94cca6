package entity

import (
	"github.com/uptrace/bun"
)

type Parent struct {
	bun.BaseModel `bun:"table:parents"`

	BasicEntity
	UserID *int    `json:"user_id" bun:"user_id"`
	Name   *string `json:"name"    bun:"name"`
	Email  *string `json:"email"   bun:"email"`
	Phone  *string `json:"phone"   bun:"phone"`
}

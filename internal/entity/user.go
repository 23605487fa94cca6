package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Email    *string `json:"email"    bun:"email"`
	Name     *string `json:"name"     bun:"name"`
	Password *string `json:"password" bun:"password"`
	Role     *string `json:"role"     bun:"role"`
}

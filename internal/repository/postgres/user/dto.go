package user

import (
	"time"

	"github.com/uptrace/bun"
)

type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	AccessToken  string `json:"access_token" form:"access_token"`
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

// AuthClaims is what token generation needs to know about a signed-in user.
type AuthClaims struct {
	ID   int
	Role string

	StudentID *int
	TeacherID *int
	ParentID  *int
}

type CreateRequest struct {
	Email    *string `json:"email" form:"email" validate:"required"`
	Name     *string `json:"name" form:"name" validate:"required"`
	Password *string `json:"password" form:"password" validate:"required"`
	Role     *string `json:"role" form:"role" validate:"required"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID        int       `json:"id" bun:"-"`
	Email     *string   `json:"email" bun:"email"`
	Name      *string   `json:"name" bun:"name"`
	Password  *string   `json:"-" bun:"password"`
	Role      *string   `json:"role" bun:"role"`
	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

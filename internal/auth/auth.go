package auth

import (
	"context"
	"net/http"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"school/backend/foundation/web"
)

// The closed set of roles the service knows about. Authorization decisions
// happen once at the boundary, repositories receive an already resolved scope.
const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
	RoleParent  = "PARENT"
)

type ctxKey int

// Key is used to store/retrieve the Claims from a context.Context.
const Key ctxKey = 1

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	UserId int    `json:"user_id"`
	Role   string `json:"role"`

	// Subject links resolved at sign-in. Only the one matching Role is set.
	StudentID *int `json:"student_id,omitempty"`
	TeacherID *int `json:"teacher_id,omitempty"`
	ParentID  *int `json:"parent_id,omitempty"`
}

// Authorized returns true if the claims carry one of the given roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// Auth validates tokens issued by this service.
type Auth struct {
	key []byte
}

func NewAuth(jwtKey string) *Auth {
	return &Auth{key: []byte(jwtKey)}
}

// ValidateToken recreates the Claims that were used to generate a token.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}

// GetClaims pulls the authenticated claims out of the request context.
func GetClaims(ctx context.Context) (Claims, error) {
	claims, ok := ctx.Value(Key).(Claims)
	if !ok {
		return Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}
	return claims, nil
}

package commands

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"school/backend/internal/auth"
	"school/backend/internal/repository/postgres/user"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// GenToken issues an access/refresh token pair for a signed-in user.
func GenToken(data user.AuthClaims, jwtKey string) (string, string, error) {
	accessToken, err := signToken(data, jwtKey, accessTokenTTL)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshToken, err := signToken(data, jwtKey, refreshTokenTTL)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

// VerifyTokens checks the refresh token signature and confirms both tokens
// belong to the same user. The access token may already be expired.
func VerifyTokens(accessToken, refreshToken, jwtKey string) (auth.Claims, auth.Claims, error) {
	a := auth.NewAuth(jwtKey)

	refreshClaims, err := a.ValidateToken(refreshToken)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "validating refresh token")
	}

	var accessClaims auth.Claims
	parser := jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.ParseWithClaims(accessToken, &accessClaims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtKey), nil
	})
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "parsing access token")
	}
	if !token.Valid {
		return auth.Claims{}, auth.Claims{}, errors.New("invalid access token")
	}

	if accessClaims.UserId != refreshClaims.UserId {
		return auth.Claims{}, auth.Claims{}, errors.New("token pair mismatch")
	}

	return accessClaims, refreshClaims, nil
}

func signToken(data user.AuthClaims, jwtKey string, ttl time.Duration) (string, error) {
	claims := auth.Claims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(ttl).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
		UserId:    data.ID,
		Role:      data.Role,
		StudentID: data.StudentID,
		TeacherID: data.TeacherID,
		ParentID:  data.ParentID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtKey))
}

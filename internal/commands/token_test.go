package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school/backend/internal/auth"
	"school/backend/internal/repository/postgres/user"
)

const testKey = "test-signing-key"

func TestGenTokenRoundTrip(t *testing.T) {
	studentID := 42
	claims := user.AuthClaims{
		ID:        7,
		Role:      auth.RoleStudent,
		StudentID: &studentID,
	}

	accessToken, refreshToken, err := GenToken(claims, testKey)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	a := auth.NewAuth(testKey)
	parsed, err := a.ValidateToken(accessToken)
	require.NoError(t, err)

	assert.Equal(t, 7, parsed.UserId)
	assert.Equal(t, auth.RoleStudent, parsed.Role)
	require.NotNil(t, parsed.StudentID)
	assert.Equal(t, 42, *parsed.StudentID)
	assert.Nil(t, parsed.TeacherID)
	assert.Nil(t, parsed.ParentID)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	accessToken, _, err := GenToken(user.AuthClaims{ID: 1, Role: auth.RoleAdmin}, testKey)
	require.NoError(t, err)

	a := auth.NewAuth("some-other-key")
	_, err = a.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestVerifyTokens(t *testing.T) {
	accessToken, refreshToken, err := GenToken(user.AuthClaims{ID: 3, Role: auth.RoleTeacher}, testKey)
	require.NoError(t, err)

	accessClaims, refreshClaims, err := VerifyTokens(accessToken, refreshToken, testKey)
	require.NoError(t, err)
	assert.Equal(t, 3, accessClaims.UserId)
	assert.Equal(t, 3, refreshClaims.UserId)
	assert.Equal(t, auth.RoleTeacher, refreshClaims.Role)
}

func TestVerifyTokensRejectsMismatchedPair(t *testing.T) {
	accessToken, _, err := GenToken(user.AuthClaims{ID: 3, Role: auth.RoleTeacher}, testKey)
	require.NoError(t, err)

	_, otherRefresh, err := GenToken(user.AuthClaims{ID: 8, Role: auth.RoleAdmin}, testKey)
	require.NoError(t, err)

	_, _, err = VerifyTokens(accessToken, otherRefresh, testKey)
	assert.Error(t, err)
}

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsAuthorized(t *testing.T) {
	claims := Claims{Role: RoleTeacher}

	assert.True(t, claims.Authorized(RoleTeacher))
	assert.True(t, claims.Authorized(RoleAdmin, RoleTeacher))
	assert.False(t, claims.Authorized(RoleAdmin))
	assert.False(t, claims.Authorized())
}

func TestGetClaims(t *testing.T) {
	want := Claims{UserId: 5, Role: RoleParent}
	ctx := context.WithValue(context.Background(), Key, want)

	got, err := GetClaims(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = GetClaims(context.Background())
	assert.Error(t, err)
}

package helper

import (
	"testing"

	"sewaku_api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIdFromToken(t *testing.T) {
	userId := uuid.New()

	raw, err := GenerateAccessToken(model.TokenClaim{UserId: userId, Email: "budi@sewaku.id"})
	require.NoError(t, err)

	token, err := ParseToken(raw)
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, userId, UserIdFromToken(token))
}

func TestUserIdFromTokenInvalid(t *testing.T) {
	assert.Equal(t, uuid.Nil, UserIdFromToken(nil))

	// claim userId bukan uuid
	bad := jwt.New(jwt.SigningMethodHS256)
	bad.Claims.(jwt.MapClaims)["userId"] = "bukan-uuid"
	assert.Equal(t, uuid.Nil, UserIdFromToken(bad))

	// tanpa claim userId sama sekali
	empty := jwt.New(jwt.SigningMethodHS256)
	assert.Equal(t, uuid.Nil, UserIdFromToken(empty))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.True(t, CheckPasswordHash("rahasia123", hash))
	assert.False(t, CheckPasswordHash("salah", hash))
}

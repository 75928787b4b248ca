package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(42, "recruiter@example.com", "recruiter")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "recruiter@example.com", claims.Email)
	assert.Equal(t, "recruiter", claims.Role)
}

func TestJWTService_WrongSecret(t *testing.T) {
	service := NewJWTService("test-secret")
	other := NewJWTService("different-secret")

	token, err := service.GenerateToken(1, "user@example.com", "recruiter")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_TamperedToken(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(1, "user@example.com", "recruiter")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := NewJWTService("test-secret")

	claims := Claims{
		UserID: 7,
		Email:  "user@example.com",
		Role:   "recruiter",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_GarbageToken(t *testing.T) {
	service := NewJWTService("test-secret")

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

package auth_test

import (
	"testing"
	"time"

	"multikanban/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const secret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	// Генерируем токен
	token, err := auth.GenerateToken(secret, "Jane Smith", 24*time.Hour)

	// Проверяем, что токен создан без ошибок
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Парсим токен
	user, err := auth.ParseToken(secret, token)

	assert.NoError(t, err)
	assert.Equal(t, "Jane Smith", user)
}

func TestParseToken_InvalidToken(t *testing.T) {
	_, err := auth.ParseToken(secret, "invalid-token")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _ := auth.GenerateToken("other-secret", "Jane Smith", time.Hour)

	_, err := auth.ParseToken(secret, token)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_ExpiredToken(t *testing.T) {
	// Создаем токен с истекшим сроком действия
	token, _ := auth.GenerateToken(secret, "Jane Smith", -time.Hour)

	_, err := auth.ParseToken(secret, token)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_MissingClaims(t *testing.T) {
	// Создаем токен без пользователя
	claims := jwt.MapClaims{
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenWithoutUser, _ := token.SignedString([]byte(secret))

	_, err := auth.ParseToken(secret, tokenWithoutUser)

	assert.ErrorIs(t, err, auth.ErrInvalidClaims)
}

package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JwtSecret []byte

// GenerateAccessToken creates a signed JWT bound to an owner account.
func GenerateAccessToken(ownerID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"owner_id": ownerID,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	})

	return token.SignedString(JwtSecret)
}

// ExtractOwnerIDFromToken validates a Bearer authorization header and returns
// the owner ID embedded in the token claims.
func ExtractOwnerIDFromToken(authHeader string) (uint, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, errors.New("invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	ownerIDFloat, ok := claims["owner_id"].(float64) // JWT numeric values are float64
	if !ok {
		return 0, errors.New("invalid owner ID in token")
	}

	return uint(ownerIDFloat), nil
}

package utils

import (
	"fmt"
	"room-booking-api/core/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims carries the admin session identity. Reservation-level
// authorization (owner / department code) is decided by the booking
// authorizer, not by these claims.
type TokenClaims struct {
	DepartmentCode string `json:"department_code"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a JWT for an authenticated admin session.
func GenerateToken(departmentCode, role string, ttl time.Duration) (string, error) {
	cfg := config.Get()
	now := time.Now()
	claims := &TokenClaims{
		DepartmentCode: departmentCode,
		Role:           role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   departmentCode,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Auth.JWTSecret))
}

// ValidateAndParseToken verifies the signature and expiry of a session token.
func ValidateAndParseToken(tokenString string) (*TokenClaims, error) {
	cfg := config.Get()
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

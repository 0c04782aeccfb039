package utils

import (
	"errors"
	"time"

	"tiffin/config"

	"github.com/golang-jwt/jwt"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "tiffin-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for the given subject (student or admin
// id), scoped to one kitchen and one role. The token expires after duration.
func GenerateToken(subject, kitchenID, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":     subject,
		"kitchen": kitchenID,
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaimsFromToken returns the subject, kitchen and role claims from a
// valid token string.
func ExtractClaimsFromToken(tokenString string) (subject, kitchenID, role string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", "", errors.New("invalid token")
	}

	subject, _ = claims["sub"].(string)
	kitchenID, _ = claims["kitchen"].(string)
	role, _ = claims["role"].(string)
	if subject == "" || role == "" {
		return "", "", "", errors.New("token does not contain valid 'sub' and 'role' claims")
	}
	return subject, kitchenID, role, nil
}

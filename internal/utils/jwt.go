package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken создаёт access-токен администратора после логина.
func GenerateAccessToken(secret string, adminID int64, email string, duration time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("jwt secret is empty")
	}
	now := time.Now()
	expiresAt := now.Add(duration)
	claims := jwt.MapClaims{
		"admin_id":   adminID,
		"email":      email,
		"exp":        expiresAt.Unix(),
		"iat":        now.Unix(),
		"token_type": "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAccessToken проверяет подпись и срок действия, возвращает id и email.
func ParseAccessToken(secret, tokenString string) (int64, string, error) {
	if secret == "" {
		return 0, "", errors.New("jwt secret is empty")
	}
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}
	if !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	id, ok1 := claims["admin_id"].(float64)
	email, ok2 := claims["email"].(string)
	if !ok1 || !ok2 {
		return 0, "", errors.New("invalid token payload")
	}
	return int64(id), email, nil
}

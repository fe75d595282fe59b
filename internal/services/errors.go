package services

import "errors"

// Тексты совпадают с тем, что видит UI.
var (
	ErrNotFound           = errors.New("User not found")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidOTP         = errors.New("Invalid or expired OTP")
)

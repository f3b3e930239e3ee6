// Package entities определяет доменные сущности приложения.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrEmptyUsername      = errors.New("username cannot be empty")
	ErrPasswordTooShort   = errors.New("password must contain at least 8 characters")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// MinPasswordLength - минимальная длина пароля при регистрации.
const MinPasswordLength = 8

// User представляет основную сущность домена пользователя.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

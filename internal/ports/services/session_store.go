package services

import (
	"context"
	"errors"
)

// ErrSessionNotFound возвращается, когда токен сессии неизвестен или истек.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore определяет серверное хранилище сессий: непрозрачный токен
// сопоставляется с ID аутентифицированного пользователя.
type SessionStore interface {
	// Create выпускает новый токен сессии для пользователя.
	Create(ctx context.Context, userID string) (string, error)

	// Resolve возвращает ID пользователя по токену сессии. Возвращает
	// ErrSessionNotFound, если сессия не существует или истекла.
	Resolve(ctx context.Context, token string) (string, error)

	// Destroy завершает сессию. Уничтожение неизвестной сессии не является ошибкой.
	Destroy(ctx context.Context, token string) error
}

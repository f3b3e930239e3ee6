// Package api определяет интерфейсы сценариев использования приложения.
package api

import (
	"context"

	"unotes/internal/domain/entities"
)

// AuthUseCase определяет сценарии регистрации и аутентификации.
// Токен сессии непрозрачен для вызывающей стороны; HTTP слой переносит
// его в cookie.
type AuthUseCase interface {
	// Register создает пользователя и сразу открывает для него сессию.
	Register(ctx context.Context, username, password string) (*entities.User, string, error)

	// Login проверяет учетные данные и открывает сессию. Возвращает
	// entities.ErrInvalidCredentials при несовпадении пароля или
	// неизвестном имени пользователя.
	Login(ctx context.Context, username, password string) (*entities.User, string, error)

	// Logout завершает сессию.
	Logout(ctx context.Context, token string) error

	// ResolveSession возвращает пользователя текущей сессии.
	ResolveSession(ctx context.Context, token string) (*entities.User, error)
}

// Package repositories определяет интерфейсы хранилищ доменных сущностей.
package repositories

import (
	"context"

	"unotes/internal/domain/entities"
)

// UserRepository определяет операции над хранилищем пользователей.
type UserRepository interface {
	// Create сохраняет нового пользователя. Возвращает
	// entities.ErrUsernameTaken при нарушении уникальности имени.
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	// FindByID находит пользователя по ID. Возвращает
	// entities.ErrUserNotFound, если пользователь не существует.
	FindByID(ctx context.Context, id string) (*entities.User, error)

	// FindByUsername находит пользователя по имени. Возвращает
	// entities.ErrUserNotFound, если пользователь не существует.
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}

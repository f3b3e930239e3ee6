// Package services определяет интерфейсы прикладных сервисов.
package services

import "context"

// PasswordService определяет операции хэширования и проверки паролей.
type PasswordService interface {
	// Hash хэширует пароль.
	Hash(ctx context.Context, password string) (string, error)

	// Verify проверяет соответствие пароля хэшу.
	Verify(ctx context.Context, password, hash string) (bool, error)
}

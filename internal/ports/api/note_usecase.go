package api

import (
	"context"

	"unotes/internal/domain/entities"
)

// NoteUseCase определяет сценарии работы с заметками. Все изменяющие
// операции проверяют владение заметкой: entities.ErrNotNoteOwner
// возвращается при попытке изменить чужую заметку.
type NoteUseCase interface {
	// Create создает заметку от имени автора.
	Create(ctx context.Context, author *entities.User, title, content string) (*entities.Note, error)

	// List возвращает заметки пользователя, новые первыми.
	List(ctx context.Context, userID string) ([]*entities.Note, error)

	// GetOwned возвращает заметку, если она принадлежит пользователю.
	GetOwned(ctx context.Context, noteID, userID string) (*entities.Note, error)

	// Update перезаписывает разрешенные поля заметки пользователя.
	Update(ctx context.Context, noteID, userID string, update *entities.NoteUpdate) error

	// Delete удаляет заметку пользователя.
	Delete(ctx context.Context, noteID, userID string) error
}

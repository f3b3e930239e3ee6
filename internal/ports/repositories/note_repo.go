package repositories

import (
	"context"

	"unotes/internal/domain/entities"
)

// NoteRepository определяет операции над хранилищем заметок.
type NoteRepository interface {
	// Create сохраняет новую заметку и возвращает ее с заполненным ID.
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	// FindByID находит заметку по ID независимо от владельца. Возвращает
	// entities.ErrNoteNotFound, если заметка не существует.
	FindByID(ctx context.Context, noteID string) (*entities.Note, error)

	// ListByAuthorID возвращает все заметки пользователя, новые первыми.
	ListByAuthorID(ctx context.Context, authorID string) ([]*entities.Note, error)

	// Update перезаписывает разрешенные поля заметки владельца. Возвращает
	// entities.ErrNoteNotFound, если заметка не существует или принадлежит
	// другому пользователю.
	Update(ctx context.Context, noteID, authorID string, update *entities.NoteUpdate) error

	// Delete удаляет заметку владельца. Возвращает entities.ErrNoteNotFound,
	// если заметка не существует или принадлежит другому пользователю.
	Delete(ctx context.Context, noteID, authorID string) error
}

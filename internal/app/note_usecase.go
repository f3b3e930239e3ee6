package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"unotes/internal/domain/entities"
	"unotes/internal/ports/api"
	"unotes/internal/ports/repositories"
	"unotes/pkg/logger"
)

const (
	methodCreateNote = "Create"
	methodListNotes  = "List"
	methodGetOwned   = "GetOwned"
	methodUpdateNote = "Update"
	methodDeleteNote = "Delete"

	msgCreatingNote  = "creating note"
	msgNoteCreated   = "note created"
	msgListingNotes  = "listing notes"
	msgNoteNotOwned  = "note belongs to another user"
	msgNoteUpdated   = "note updated"
	msgNoteDeleted   = "note deleted"
	msgErrCreateNote = "failed to create note"
	msgErrListNotes  = "failed to list notes"
	msgErrFindNote   = "failed to find note"
	msgErrUpdateNote = "failed to update note"
	msgErrDeleteNote = "failed to delete note"

	errCtxValidatingTitle = "validating title"
	errCtxCreatingNote    = "creating note"
	errCtxListingNotes    = "listing notes"
	errCtxFindingNote     = "finding note"
	errCtxCheckingOwner   = "checking note ownership"
	errCtxUpdatingNote    = "updating note"
	errCtxDeletingNote    = "deleting note"
)

// NoteUseCaseImpl реализует интерфейс NoteUseCase.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр сервиса заметок.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{noteRepo: noteRepo}
}

// Create создает заметку от имени автора. Авторство фиксируется на момент
// создания: имя автора денормализуется в заметку и далее не обновляется.
func (n *NoteUseCaseImpl) Create(ctx context.Context, author *entities.User, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("userID", author.ID))
	log.Debug(ctx, msgCreatingNote)

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingTitle, entities.ErrEmptyTitle)
	}

	note, err := n.noteRepo.Create(ctx, entities.NewNote(author, title, content))
	if err != nil {
		log.Error(ctx, msgErrCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", note.ID))
	return note, nil
}

// List возвращает заметки пользователя. Заметки других пользователей
// в выборку не попадают никогда.
func (n *NoteUseCaseImpl) List(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes), zap.String("userID", userID))
	log.Debug(ctx, msgListingNotes)

	notes, err := n.noteRepo.ListByAuthorID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	return notes, nil
}

// GetOwned возвращает заметку, если она принадлежит пользователю.
// Возвращает entities.ErrNoteNotFound для несуществующей заметки и
// entities.ErrNotNoteOwner для чужой.
func (n *NoteUseCaseImpl) GetOwned(ctx context.Context, noteID, userID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetOwned), zap.String("noteID", noteID))

	note, err := n.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return nil, fmt.Errorf("%s: %w", errCtxFindingNote, err)
		}
		log.Error(ctx, msgErrFindNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingNote, err)
	}

	if !note.OwnedBy(userID) {
		log.Warn(ctx, msgNoteNotOwned, zap.String("userID", userID), zap.String("authorID", note.AuthorID))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingOwner, entities.ErrNotNoteOwner)
	}

	return note, nil
}

// Update перезаписывает разрешенные поля заметки пользователя.
func (n *NoteUseCaseImpl) Update(ctx context.Context, noteID, userID string, update *entities.NoteUpdate) error {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateNote), zap.String("noteID", noteID))

	// Различаем отсутствующую и чужую заметку до записи.
	if _, err := n.GetOwned(ctx, noteID, userID); err != nil {
		return err
	}

	update.Title = strings.TrimSpace(update.Title)
	if update.Title == "" {
		return fmt.Errorf("%s: %w", errCtxValidatingTitle, entities.ErrEmptyTitle)
	}

	if err := n.noteRepo.Update(ctx, noteID, userID, update); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
		}
		log.Error(ctx, msgErrUpdateNote, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, msgNoteUpdated)
	return nil
}

// Delete удаляет заметку пользователя.
func (n *NoteUseCaseImpl) Delete(ctx context.Context, noteID, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.String("noteID", noteID))

	if _, err := n.GetOwned(ctx, noteID, userID); err != nil {
		return err
	}

	if err := n.noteRepo.Delete(ctx, noteID, userID); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
		}
		log.Error(ctx, msgErrDeleteNote, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	log.Info(ctx, msgNoteDeleted)
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"unotes/internal/domain/entities"
	"unotes/internal/ports/repositories"
	"unotes/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository для работы с Postgres.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new note", zap.String("authorID", note.AuthorID))

	query := `
        INSERT INTO notes (title, content, author_id, author_username)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, content, author_id, author_username, created_at
    `

	var created entities.Note
	err := r.pool.QueryRow(ctx, query,
		note.Title,
		note.Content,
		note.AuthorID,
		note.AuthorUsername,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Content,
		&created.AuthorID,
		&created.AuthorUsername,
		&created.CreatedAt,
	)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return &created, nil
}

// FindByID получает заметку по ID независимо от владельца.
// Проверка владения выполняется вызывающей стороной.
func (r *NoteRepository) FindByID(ctx context.Context, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindByID"))

	query := `
        SELECT id, title, content, author_id, author_username, created_at
        FROM notes
        WHERE id = $1
    `

	var note entities.Note
	err := r.pool.QueryRow(ctx, query, noteID).Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.AuthorID,
		&note.AuthorUsername,
		&note.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// ListByAuthorID получает список заметок пользователя, новые первыми.
func (r *NoteRepository) ListByAuthorID(ctx context.Context, authorID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByAuthorID"))
	log.Debug(ctx, "listing notes", zap.String("authorID", authorID))

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, content, author_id, author_username, created_at
         FROM notes
         WHERE author_id = $1
         ORDER BY created_at DESC`,
		authorID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.AuthorID, &note.AuthorUsername, &note.CreatedAt)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update перезаписывает разрешенные поля заметки владельца.
func (r *NoteRepository) Update(ctx context.Context, noteID, authorID string, update *entities.NoteUpdate) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`UPDATE notes SET title = $1, content = $2 WHERE id = $3 AND author_id = $4`,
		update.Title, update.Content, noteID, authorID,
	)
	if err != nil {
		log.Error(ctx, "failed to update note", zap.Error(err))
		return fmt.Errorf("failed to update note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user", zap.String("noteID", noteID))
		return entities.ErrNoteNotFound
	}

	return nil
}

// Delete удаляет заметку владельца.
func (r *NoteRepository) Delete(ctx context.Context, noteID, authorID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND author_id = $2`,
		noteID, authorID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user", zap.String("noteID", noteID))
		return entities.ErrNoteNotFound
	}

	return nil
}

package entities

import (
	"errors"
	"time"
)

// Ошибки домена заметок.
var (
	ErrEmptyTitle   = errors.New("note title cannot be empty")
	ErrNoteNotFound = errors.New("note not found")
	ErrNotNoteOwner = errors.New("note belongs to another user")
)

// Note представляет собой заметку пользователя.
//
// AuthorUsername - денормализованный снимок имени пользователя на момент
// создания заметки; при смене имени пользователя он не обновляется.
type Note struct {
	ID             string
	Title          string
	Content        string
	AuthorID       string
	AuthorUsername string
	CreatedAt      time.Time
}

// NewNote создает новую заметку от имени указанного автора.
func NewNote(author *User, title, content string) *Note {
	return &Note{
		Title:          title,
		Content:        content,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		CreatedAt:      time.Now().UTC(),
	}
}

// NoteUpdate описывает разрешенные к изменению поля заметки.
// Любые другие поля запроса игнорируются.
type NoteUpdate struct {
	Title   string
	Content string
}

// OwnedBy сообщает, принадлежит ли заметка указанному пользователю.
func (n *Note) OwnedBy(userID string) bool {
	return n.AuthorID == userID
}

package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/utils/v2"
	"go.uber.org/zap"

	"unotes/internal/domain/entities"
	"unotes/internal/http/middleware"
	"unotes/internal/ports/api"
	"unotes/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerNotesIndex = "note handler: index"
	LogHandlerNoteNew    = "note handler: new form"
	LogHandlerNoteCreate = "note handler: create"
	LogHandlerNoteEdit   = "note handler: edit form"
	LogHandlerNoteUpdate = "note handler: update"
	LogHandlerNoteDelete = "note handler: delete"
)

const msgEmptyTitle = "Note title cannot be empty."

// NoteHandler содержит HTTP обработчики заметок. Все маршруты стоят за
// NewRequireAuth, а работающие с конкретной заметкой - еще и за
// NewRequireNoteOwner.
type NoteHandler struct {
	notes api.NoteUseCase
}

// NewNoteHandler создает новый экземпляр обработчика заметок.
func NewNoteHandler(notes api.NoteUseCase) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// Index показывает список заметок текущего пользователя.
func (h *NoteHandler) Index(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerNotesIndex)

	user := middleware.CurrentUser(ctx)

	notes, err := h.notes.List(requestCtx, user.ID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return fmt.Errorf("listing notes: %w", err)
	}

	if err := ctx.Render("index", fiber.Map{
		"CurrentUser": user,
		"Notes":       notes,
	}); err != nil {
		return fmt.Errorf("rendering notes index: %w", err)
	}
	return nil
}

// NewForm показывает форму создания заметки.
func (h *NoteHandler) NewForm(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerNoteNew)

	if err := ctx.Render("new", fiber.Map{
		"CurrentUser": middleware.CurrentUser(ctx),
	}); err != nil {
		return fmt.Errorf("rendering new note form: %w", err)
	}
	return nil
}

// Create создает заметку от имени текущего пользователя.
func (h *NoteHandler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerNoteCreate)

	user := middleware.CurrentUser(ctx)
	// Значения формы указывают на переиспользуемый буфер запроса fasthttp
	// и копируются до передачи за пределы запроса.
	title := utils.CopyString(ctx.FormValue("title"))
	content := utils.CopyString(ctx.FormValue("content"))

	if _, err := h.notes.Create(requestCtx, user, title, content); err != nil {
		if errors.Is(err, entities.ErrEmptyTitle) {
			if renderErr := ctx.Status(fiber.StatusUnprocessableEntity).Render("new", fiber.Map{
				"CurrentUser": user,
				"Error":       msgEmptyTitle,
				"Content":     content,
			}); renderErr != nil {
				return fmt.Errorf("rendering new note form: %w", renderErr)
			}
			return nil
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return fmt.Errorf("creating note: %w", err)
	}

	return ctx.Redirect().To("/notes")
}

// EditForm показывает форму редактирования заметки.
// Заметка уже загружена и проверена промежуточным ПО владения.
func (h *NoteHandler) EditForm(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerNoteEdit)

	if err := ctx.Render("edit", fiber.Map{
		"CurrentUser": middleware.CurrentUser(ctx),
		"Note":        middleware.CurrentNote(ctx),
	}); err != nil {
		return fmt.Errorf("rendering edit note form: %w", err)
	}
	return nil
}

// Update перезаписывает заголовок и содержимое заметки.
// Другие поля запроса игнорируются.
func (h *NoteHandler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerNoteUpdate)

	user := middleware.CurrentUser(ctx)
	note := middleware.CurrentNote(ctx)

	update := &entities.NoteUpdate{
		Title:   utils.CopyString(ctx.FormValue("title")),
		Content: utils.CopyString(ctx.FormValue("content")),
	}

	if err := h.notes.Update(requestCtx, note.ID, user.ID, update); err != nil {
		if errors.Is(err, entities.ErrEmptyTitle) {
			if renderErr := ctx.Status(fiber.StatusUnprocessableEntity).Render("edit", fiber.Map{
				"CurrentUser": user,
				"Note":        note,
				"Error":       msgEmptyTitle,
			}); renderErr != nil {
				return fmt.Errorf("rendering edit note form: %w", renderErr)
			}
			return nil
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return fmt.Errorf("updating note: %w", err)
	}

	return ctx.Redirect().To("/notes")
}

// Delete удаляет заметку.
func (h *NoteHandler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerNoteDelete)

	user := middleware.CurrentUser(ctx)
	note := middleware.CurrentNote(ctx)

	if err := h.notes.Delete(requestCtx, note.ID, user.ID); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return fmt.Errorf("deleting note: %w", err)
	}

	return ctx.Redirect().To("/notes")
}

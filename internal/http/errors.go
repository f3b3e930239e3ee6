// Package http содержит компоненты для HTTP сервера.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"unotes/internal/domain/entities"
	"unotes/pkg/logger"
)

// Сообщения страницы ошибок.
const (
	msgNotFound    = "The page you are looking for does not exist."
	msgForbidden   = "You are not allowed to access this note."
	msgServerError = "Something went wrong. Please try again later."
)

// NewErrorHandler возвращает глобальный обработчик ошибок, отображающий
// пользователю страницу ошибки. Отсутствующая заметка дает 404, чужая - 403,
// все прочие ошибки - 500. Ни одна ошибка записи не проглатывается молча.
func NewErrorHandler() fiber.ErrorHandler {
	return func(ctx fiber.Ctx, err error) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx)

		status := fiber.StatusInternalServerError
		message := msgServerError

		var fiberErr *fiber.Error
		switch {
		case errors.Is(err, entities.ErrNoteNotFound):
			status = fiber.StatusNotFound
			message = msgNotFound
		case errors.Is(err, entities.ErrNotNoteOwner):
			status = fiber.StatusForbidden
			message = msgForbidden
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			if status == fiber.StatusNotFound {
				message = msgNotFound
			}
		}

		if status >= fiber.StatusInternalServerError {
			log.Error(requestCtx, "request failed", zap.Int("status", status), zap.Error(err))
		} else {
			log.Debug(requestCtx, "request rejected", zap.Int("status", status), zap.Error(err))
		}

		if renderErr := ctx.Status(status).Render("error", fiber.Map{
			"Status":  status,
			"Message": message,
		}); renderErr != nil {
			log.Error(requestCtx, "failed to render error page", zap.Error(renderErr))
			return ctx.Status(status).SendString(message)
		}
		return nil
	}
}

package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"unotes/internal/ports/api"
	"unotes/pkg/logger"
)

// Константы для логирования.
const (
	LogOwnershipMiddleware = "ownership middleware"

	ErrorOwnershipDenied = "note ownership check failed"
)

// NewRequireNoteOwner создает промежуточное ПО, пропускающее запрос
// только к заметкам текущего пользователя. Ставится после NewRequireAuth
// на каждый маршрут, изменяющий или раскрывающий конкретную заметку.
// Отсутствующая заметка дает 404, чужая - 403; оба случая
// обрабатываются глобальным обработчиком ошибок.
func NewRequireNoteOwner(notes api.NoteUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "ownership"))
		log.Debug(requestCtx, LogOwnershipMiddleware)

		user := CurrentUser(ctx)
		if user == nil {
			// Достижимо только при ошибочной сборке цепочки маршрутов.
			return ctx.Redirect().To("/login")
		}

		note, err := notes.GetOwned(requestCtx, ctx.Params("noteID"), user.ID)
		if err != nil {
			log.Debug(requestCtx, ErrorOwnershipDenied, zap.Error(err))
			return fmt.Errorf("%s: %w", ErrorOwnershipDenied, err)
		}

		ctx.Locals(currentNoteKey, note)
		return ctx.Next()
	}
}

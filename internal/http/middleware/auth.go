package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"unotes/internal/domain/entities"
	"unotes/internal/ports/api"
	"unotes/pkg/logger"
)

// Ключи request-locals.
const (
	currentUserKey = "currentUser"
	currentNoteKey = "currentNote"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoSessionCookie = "no session cookie provided"
	ErrorInvalidSession  = "session is invalid or expired"
)

// NewRequireAuth создает промежуточное ПО, пропускающее только
// аутентифицированные запросы. Неаутентифицированный запрос
// перенаправляется на форму входа. За этим ПО текущий пользователь
// всегда доступен через CurrentUser.
func NewRequireAuth(auth api.AuthUseCase, cookieName string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		token := ctx.Cookies(cookieName)
		if token == "" {
			log.Debug(requestCtx, ErrorNoSessionCookie)
			return ctx.Redirect().To("/login")
		}

		user, err := auth.ResolveSession(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidSession, zap.Error(err))
			ctx.ClearCookie(cookieName)
			return ctx.Redirect().To("/login")
		}

		ctx.Locals(currentUserKey, user)
		return ctx.Next()
	}
}

// CurrentUser возвращает пользователя, установленного NewRequireAuth.
func CurrentUser(ctx fiber.Ctx) *entities.User {
	user, _ := ctx.Locals(currentUserKey).(*entities.User)
	return user
}

// CurrentNote возвращает заметку, установленную NewRequireNoteOwner.
func CurrentNote(ctx fiber.Ctx) *entities.Note {
	note, _ := ctx.Locals(currentNoteKey).(*entities.Note)
	return note
}

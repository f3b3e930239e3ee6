package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"unotes/pkg/logger"
)

// NewRecoveryMiddleware создает новое промежуточное ПО для восстановления
// после паники. Паника превращается в ошибку, и пользователь получает
// обычную страницу ошибки от глобального обработчика.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				requestCtx := ctx.Context()
				logger.Log(requestCtx).Error(requestCtx, "Server panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)
				err = fmt.Errorf("recovered from panic: %v", r)
			}
		}()

		return ctx.Next()
	}
}

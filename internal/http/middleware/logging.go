// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"unotes/pkg/logger"
)

// NewLoggerMiddleware создает новое промежуточное ПО для логирования HTTP
// запросов. Каждому запросу присваивается идентификатор, который через
// контекст попадает во все записи логгера ниже по цепочке.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), "")
		ctx.SetContext(requestCtx)

		start := time.Now()

		log := logger.Log(requestCtx).With(
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
			zap.String("ip", ctx.IP()),
		)

		log.Info(requestCtx, "Request started")

		err := ctx.Next()

		latency := time.Since(start)

		if err != nil {
			// Финальный статус выставит глобальный обработчик ошибок
			// после этого middleware, поэтому здесь он не логируется.
			log.Error(requestCtx, "Request failed",
				zap.Duration("latency", latency),
				zap.Error(err),
			)
			return fmt.Errorf("request processing error: %w", err)
		}

		log.Info(requestCtx, "Request completed",
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", latency),
		)
		return nil
	}
}

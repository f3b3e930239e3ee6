package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// MethodOverrideField - имя поля формы с переопределенным HTTP методом.
// HTML формы умеют отправлять только GET и POST, поэтому PUT и DELETE
// передаются скрытым полем.
const MethodOverrideField = "_method"

// NewMethodOverrideMiddleware создает промежуточное ПО, подменяющее метод
// POST запроса значением из поля формы до маршрутизации.
func NewMethodOverrideMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		if ctx.Method() == fiber.MethodPost {
			switch strings.ToUpper(ctx.FormValue(MethodOverrideField)) {
			case fiber.MethodPut:
				ctx.Method(fiber.MethodPut)
			case fiber.MethodDelete:
				ctx.Method(fiber.MethodDelete)
			}
		}
		return ctx.Next()
	}
}

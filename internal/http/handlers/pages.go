package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
)

// PageHandler содержит обработчики статических страниц.
type PageHandler struct{}

// NewPageHandler создает новый экземпляр обработчика страниц.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Landing показывает главную страницу.
func (h *PageHandler) Landing(ctx fiber.Ctx) error {
	if err := ctx.Render("landing", fiber.Map{}); err != nil {
		return fmt.Errorf("rendering landing page: %w", err)
	}
	return nil
}

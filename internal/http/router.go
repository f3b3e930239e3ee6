package http

import (
	"github.com/gofiber/fiber/v3"

	"unotes/internal/config"
	"unotes/internal/http/handlers"
	"unotes/internal/http/middleware"
	"unotes/internal/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, auth api.AuthUseCase, notes api.NoteUseCase, sessionCfg *config.SessionConfig) {
	pageHandler := handlers.NewPageHandler()
	authHandler := handlers.NewAuthHandler(auth, sessionCfg)
	noteHandler := handlers.NewNoteHandler(notes)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewMethodOverrideMiddleware())

	// Публичные маршруты.
	app.Get("/", pageHandler.Landing)
	app.Get("/register", authHandler.RegisterForm)
	app.Post("/register", authHandler.Register)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// Маршруты заметок: все за проверкой аутентификации, работа с
	// конкретной заметкой - дополнительно за проверкой владения.
	requireAuth := middleware.NewRequireAuth(auth, sessionCfg.CookieName)
	requireOwner := middleware.NewRequireNoteOwner(notes)

	noteRoutes := app.Group("/notes", requireAuth)
	noteRoutes.Get("/", noteHandler.Index)
	noteRoutes.Get("/new", noteHandler.NewForm)
	noteRoutes.Post("/", noteHandler.Create)
	noteRoutes.Get("/:noteID/edit", noteHandler.EditForm, requireOwner)
	noteRoutes.Put("/:noteID", noteHandler.Update, requireOwner)
	noteRoutes.Delete("/:noteID", noteHandler.Delete, requireOwner)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}

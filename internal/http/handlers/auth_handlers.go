// Package handlers содержит HTTP обработчики серверных страниц приложения.
package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/utils/v2"
	"go.uber.org/zap"

	"unotes/internal/config"
	"unotes/internal/domain/entities"
	"unotes/internal/ports/api"
	"unotes/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegisterForm = "auth handler: register form"
	LogHandlerRegister     = "auth handler: register"
	LogHandlerLoginForm    = "auth handler: login form"
	LogHandlerLogin        = "auth handler: login"
	LogHandlerLogout       = "auth handler: logout"

	ErrorFailedToServeRequest = "failed to serve request"
)

// Сообщения, показываемые на формах.
const (
	msgUsernameTaken      = "This username is already taken."
	msgEmptyUsername      = "Username cannot be empty."
	msgPasswordTooShort   = "Password must contain at least 8 characters."
	msgInvalidCredentials = "Invalid username or password."
)

// AuthHandler содержит HTTP обработчики регистрации и входа.
type AuthHandler struct {
	auth api.AuthUseCase
	cfg  *config.SessionConfig
}

// NewAuthHandler создает новый экземпляр обработчика аутентификации.
func NewAuthHandler(auth api.AuthUseCase, cfg *config.SessionConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg}
}

// RegisterForm показывает форму регистрации.
func (h *AuthHandler) RegisterForm(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerRegisterForm)

	if err := ctx.Render("register", fiber.Map{}); err != nil {
		return fmt.Errorf("rendering register form: %w", err)
	}
	return nil
}

// Register обрабатывает регистрацию нового пользователя. Успешная
// регистрация сразу открывает сессию и ведет на список заметок.
func (h *AuthHandler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	// Значения формы указывают на переиспользуемый буфер запроса fasthttp
	// и копируются до передачи за пределы запроса.
	username := utils.CopyString(ctx.FormValue("username"))
	password := utils.CopyString(ctx.FormValue("password"))

	_, token, err := h.auth.Register(requestCtx, username, password)
	if err != nil {
		if msg, ok := registrationMessage(err); ok {
			log.Debug(requestCtx, "registration rejected", zap.Error(err))
			if renderErr := ctx.Status(fiber.StatusUnprocessableEntity).Render("register", fiber.Map{
				"Error":    msg,
				"Username": username,
			}); renderErr != nil {
				return fmt.Errorf("rendering register form: %w", renderErr)
			}
			return nil
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return fmt.Errorf("registering user: %w", err)
	}

	h.setSessionCookie(ctx, token)
	return ctx.Redirect().To("/notes")
}

// LoginForm показывает форму входа.
func (h *AuthHandler) LoginForm(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerLoginForm)

	if err := ctx.Render("login", fiber.Map{}); err != nil {
		return fmt.Errorf("rendering login form: %w", err)
	}
	return nil
}

// Login обрабатывает вход пользователя. При неверных учетных данных
// сессия не открывается и cookie не устанавливается.
func (h *AuthHandler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	username := ctx.FormValue("username")
	password := ctx.FormValue("password")

	_, token, err := h.auth.Login(requestCtx, username, password)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			log.Debug(requestCtx, "login rejected")
			if renderErr := ctx.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
				"Error":    msgInvalidCredentials,
				"Username": username,
			}); renderErr != nil {
				return fmt.Errorf("rendering login form: %w", renderErr)
			}
			return nil
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return fmt.Errorf("logging in: %w", err)
	}

	h.setSessionCookie(ctx, token)
	return ctx.Redirect().To("/notes")
}

// Logout завершает сессию и возвращает на главную страницу.
func (h *AuthHandler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	if token := ctx.Cookies(h.cfg.CookieName); token != "" {
		if err := h.auth.Logout(requestCtx, token); err != nil {
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return fmt.Errorf("logging out: %w", err)
		}
	}

	ctx.ClearCookie(h.cfg.CookieName)
	return ctx.Redirect().To("/")
}

func (h *AuthHandler) setSessionCookie(ctx fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.TTL),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func registrationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, entities.ErrUsernameTaken):
		return msgUsernameTaken, true
	case errors.Is(err, entities.ErrEmptyUsername):
		return msgEmptyUsername, true
	case errors.Is(err, entities.ErrPasswordTooShort):
		return msgPasswordTooShort, true
	}
	return "", false
}

// Package app содержит реализацию сценариев использования приложения.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"unotes/internal/domain/entities"
	"unotes/internal/ports/api"
	"unotes/internal/ports/repositories"
	svc "unotes/internal/ports/services"
	"unotes/pkg/logger"
)

const (
	methodRegister       = "Register"
	methodLogin          = "Login"
	methodLogout         = "Logout"
	methodResolveSession = "ResolveSession"

	msgStartRegistration = "starting user registration"
	msgEmptyUsername     = "empty username provided"
	msgInvalidPassword   = "invalid password"
	msgUsernameTaken     = "username is already taken"
	msgUserRegistered    = "user registered successfully"
	msgLoginAttempt      = "login attempt"
	msgLoginNonExistent  = "login attempt with unknown username"
	msgPasswordMismatch  = "password does not match"
	msgUserLoggedIn      = "user logged in successfully"
	msgUserLoggedOut     = "user logged out successfully"

	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrCreateSession     = "failed to create session"
	msgErrFindingUser       = "error finding user by username"
	msgErrVerifyingPassword = "error verifying password"
	msgErrDestroySession    = "failed to destroy session"
	msgErrResolveSession    = "failed to resolve session"
	msgErrSessionUser       = "session references unknown user"

	errCtxValidatingUsername = "validating username"
	errCtxValidatingPassword = "validating password"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxCreatingSession    = "creating session"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxDestroyingSession  = "destroying session"
	errCtxResolvingSession   = "resolving session"
	errCtxFindingSessionUser = "finding session user"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	sessions    svc.SessionStore
	passwordSvc svc.PasswordService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	sessions svc.SessionStore,
	passwordSvc svc.PasswordService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		sessions:    sessions,
		passwordSvc: passwordSvc,
	}
}

// Register создает нового пользователя и сразу открывает для него сессию.
func (a *AuthUseCaseImpl) Register(ctx context.Context, username, password string) (*entities.User, string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	username = strings.TrimSpace(username)
	if username == "" {
		log.Debug(ctx, msgEmptyUsername)
		return nil, "", fmt.Errorf("%s: %w", errCtxValidatingUsername, entities.ErrEmptyUsername)
	}

	passwordHash, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		if errors.Is(err, entities.ErrPasswordTooShort) {
			log.Debug(ctx, msgInvalidPassword, zap.Error(err))
			return nil, "", fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
		}
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user, err := a.userRepo.Create(ctx, &entities.User{
		Username:     username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			log.Debug(ctx, msgUsernameTaken)
			return nil, "", fmt.Errorf("%s: %w", errCtxCreatingUser, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	token, err := a.sessions.Create(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrCreateSession, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxCreatingSession, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", user.ID))
	return user, token, nil
}

// Login проверяет учетные данные и открывает сессию.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (*entities.User, string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	matches, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !matches {
		log.Debug(ctx, msgPasswordMismatch)
		return nil, "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
	}

	token, err := a.sessions.Create(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrCreateSession, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxCreatingSession, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return user, token, nil
}

// Logout завершает сессию.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))

	if err := a.sessions.Destroy(ctx, token); err != nil {
		log.Error(ctx, msgErrDestroySession, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDestroyingSession, err)
	}

	log.Info(ctx, msgUserLoggedOut)
	return nil
}

// ResolveSession возвращает пользователя текущей сессии.
func (a *AuthUseCaseImpl) ResolveSession(ctx context.Context, token string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodResolveSession))

	userID, err := a.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, svc.ErrSessionNotFound) {
			return nil, fmt.Errorf("%s: %w", errCtxResolvingSession, err)
		}
		log.Error(ctx, msgErrResolveSession, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxResolvingSession, err)
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		// Пользователь мог быть удален из БД при живой сессии.
		log.Warn(ctx, msgErrSessionUser, zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingSessionUser, err)
	}

	return user, nil
}

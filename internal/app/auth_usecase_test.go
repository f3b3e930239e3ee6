package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"unotes/internal/app"
	"unotes/internal/domain/entities"
	svc "unotes/internal/ports/services"
)

func TestAuthUseCase_Register(t *testing.T) {
	testUsername := "alice"
	testPassword := "password123"
	hashedPassword := "hashed_password"
	sessionToken := "session-token-123"

	createdUser := &entities.User{
		ID:           "generated-user-id",
		Username:     testUsername,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMocks    func(userRepo *mockUserRepository, store *mockSessionStore, passwordSvc *mockPasswordService)
		expectedErr   error
		expectedToken string
	}{
		{
			name:     "Success - user registered and logged in",
			username: testUsername,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, store *mockSessionStore, passwordSvc *mockPasswordService) {
				passwordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
				userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Username == testUsername && u.PasswordHash == hashedPassword
				})).Return(createdUser, nil).Once()
				store.On("Create", mock.Anything, createdUser.ID).Return(sessionToken, nil).Once()
			},
			expectedToken: sessionToken,
		},
		{
			name:     "Error - empty username",
			username: "   ",
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, store *mockSessionStore, passwordSvc *mockPasswordService) {
			},
			expectedErr: entities.ErrEmptyUsername,
		},
		{
			name:     "Error - password too short",
			username: testUsername,
			password: "short",
			setupMocks: func(userRepo *mockUserRepository, store *mockSessionStore, passwordSvc *mockPasswordService) {
				passwordSvc.On("Hash", mock.Anything, "short").
					Return("", entities.ErrPasswordTooShort).Once()
			},
			expectedErr: entities.ErrPasswordTooShort,
		},
		{
			name:     "Error - username already taken",
			username: testUsername,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, store *mockSessionStore, passwordSvc *mockPasswordService) {
				passwordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
				userRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, entities.ErrUsernameTaken).Once()
			},
			expectedErr: entities.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			store := new(mockSessionStore)
			passwordSvc := new(mockPasswordService)
			tt.setupMocks(userRepo, store, passwordSvc)

			useCase := app.NewAuthUseCase(userRepo, store, passwordSvc)

			user, token, err := useCase.Register(context.Background(), tt.username, tt.password)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, createdUser.ID, user.ID)
				assert.Equal(t, tt.expectedToken, token)
			}

			userRepo.AssertExpectations(t)
			store.AssertExpectations(t)
			passwordSvc.AssertExpectations(t)
		})
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	testUsername := "alice"
	testPassword := "password123"
	sessionToken := "session-token-123"

	storedUser := &entities.User{
		ID:           "user-id",
		Username:     testUsername,
		PasswordHash: "hashed_password",
	}

	t.Run("Success - valid credentials open a session", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		store := new(mockSessionStore)
		passwordSvc := new(mockPasswordService)

		userRepo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser, nil).Once()
		passwordSvc.On("Verify", mock.Anything, testPassword, storedUser.PasswordHash).Return(true, nil).Once()
		store.On("Create", mock.Anything, storedUser.ID).Return(sessionToken, nil).Once()

		useCase := app.NewAuthUseCase(userRepo, store, passwordSvc)

		user, token, err := useCase.Login(context.Background(), testUsername, testPassword)

		require.NoError(t, err)
		assert.Equal(t, storedUser.ID, user.ID)
		assert.Equal(t, sessionToken, token)

		userRepo.AssertExpectations(t)
		store.AssertExpectations(t)
		passwordSvc.AssertExpectations(t)
	})

	t.Run("Error - wrong password does not open a session", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		store := new(mockSessionStore)
		passwordSvc := new(mockPasswordService)

		userRepo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser, nil).Once()
		passwordSvc.On("Verify", mock.Anything, "wrong-password", storedUser.PasswordHash).Return(false, nil).Once()

		useCase := app.NewAuthUseCase(userRepo, store, passwordSvc)

		user, token, err := useCase.Login(context.Background(), testUsername, "wrong-password")

		require.ErrorIs(t, err, entities.ErrInvalidCredentials)
		assert.Nil(t, user)
		assert.Empty(t, token)

		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error - unknown username is indistinguishable from wrong password", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		store := new(mockSessionStore)
		passwordSvc := new(mockPasswordService)

		userRepo.On("FindByUsername", mock.Anything, "nobody").
			Return(nil, entities.ErrUserNotFound).Once()

		useCase := app.NewAuthUseCase(userRepo, store, passwordSvc)

		user, token, err := useCase.Login(context.Background(), "nobody", testPassword)

		require.ErrorIs(t, err, entities.ErrInvalidCredentials)
		assert.NotErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})
}

func TestAuthUseCase_ResolveSession(t *testing.T) {
	storedUser := &entities.User{ID: "user-id", Username: "alice"}

	t.Run("Success - session resolves to user", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		store := new(mockSessionStore)
		passwordSvc := new(mockPasswordService)

		store.On("Resolve", mock.Anything, "token").Return(storedUser.ID, nil).Once()
		userRepo.On("FindByID", mock.Anything, storedUser.ID).Return(storedUser, nil).Once()

		useCase := app.NewAuthUseCase(userRepo, store, passwordSvc)

		user, err := useCase.ResolveSession(context.Background(), "token")

		require.NoError(t, err)
		assert.Equal(t, storedUser.Username, user.Username)
	})

	t.Run("Error - unknown session", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		store := new(mockSessionStore)
		passwordSvc := new(mockPasswordService)

		store.On("Resolve", mock.Anything, "stale-token").
			Return("", svc.ErrSessionNotFound).Once()

		useCase := app.NewAuthUseCase(userRepo, store, passwordSvc)

		user, err := useCase.ResolveSession(context.Background(), "stale-token")

		require.ErrorIs(t, err, svc.ErrSessionNotFound)
		assert.Nil(t, user)
		userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	t.Run("Success - session destroyed", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		store := new(mockSessionStore)
		passwordSvc := new(mockPasswordService)

		store.On("Destroy", mock.Anything, "token").Return(nil).Once()

		useCase := app.NewAuthUseCase(userRepo, store, passwordSvc)

		require.NoError(t, useCase.Logout(context.Background(), "token"))
		store.AssertExpectations(t)
	})

	t.Run("Error - store failure is propagated", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		store := new(mockSessionStore)
		passwordSvc := new(mockPasswordService)

		storeErr := errors.New("redis down")
		store.On("Destroy", mock.Anything, "token").Return(storeErr).Once()

		useCase := app.NewAuthUseCase(userRepo, store, passwordSvc)

		require.ErrorIs(t, useCase.Logout(context.Background(), "token"), storeErr)
	})
}

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unotes/internal/adapters/postgres"
	"unotes/internal/domain/entities"
)

func userRows(user entities.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow(user.ID, user.Username, user.PasswordHash, user.CreatedAt)
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	testUser := entities.User{
		ID:           "7e7f5b6a-1111-4222-8333-444455556666",
		Username:     "alice",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("successful creation", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(testUser.Username, testUser.PasswordHash).
			WillReturnRows(userRows(testUser))

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, &entities.User{
			Username:     testUser.Username,
			PasswordHash: testUser.PasswordHash,
		})

		require.NoError(t, err)
		assert.Equal(t, testUser.ID, created.ID)
		assert.Equal(t, testUser.Username, created.Username)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username maps to ErrUsernameTaken", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(testUser.Username, testUser.PasswordHash).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, &entities.User{
			Username:     testUser.Username,
			PasswordHash: testUser.PasswordHash,
		})

		require.Nil(t, created)
		require.ErrorIs(t, err, entities.ErrUsernameTaken)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other database errors are wrapped", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbErr := errors.New("connection reset")
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(testUser.Username, testUser.PasswordHash).
			WillReturnError(dbErr)

		repo := postgres.NewUserRepository(mock)

		created, err := repo.Create(ctx, &entities.User{
			Username:     testUser.Username,
			PasswordHash: testUser.PasswordHash,
		})

		require.Nil(t, created)
		require.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, entities.ErrUsernameTaken)
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	ctx := context.Background()

	testUser := entities.User{
		ID:           "7e7f5b6a-1111-4222-8333-444455556666",
		Username:     "alice",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("successful lookup", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, username, password_hash, created_at").
			WithArgs(testUser.Username).
			WillReturnRows(userRows(testUser))

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByUsername(ctx, testUser.Username)

		require.NoError(t, err)
		assert.Equal(t, testUser.ID, user.ID)
		assert.Equal(t, testUser.PasswordHash, user.PasswordHash)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown username maps to ErrUserNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, username, password_hash, created_at").
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByUsername(ctx, "nobody")

		require.Nil(t, user)
		require.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	testUser := entities.User{
		ID:           "7e7f5b6a-1111-4222-8333-444455556666",
		Username:     "alice",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("successful lookup", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, username, password_hash, created_at").
			WithArgs(testUser.ID).
			WillReturnRows(userRows(testUser))

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByID(ctx, testUser.ID)

		require.NoError(t, err)
		assert.Equal(t, testUser.Username, user.Username)
	})

	t.Run("unknown id maps to ErrUserNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, username, password_hash, created_at").
			WithArgs("missing-id").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByID(ctx, "missing-id")

		require.Nil(t, user)
		require.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulaziz-cybers/ToDoKirano/internal/domain"
	"github.com/Abdulaziz-cybers/ToDoKirano/internal/platform/postgres"
	"github.com/Abdulaziz-cybers/ToDoKirano/internal/store"
	"github.com/Abdulaziz-cybers/ToDoKirano/internal/testdb"
)

func newStoredUser(t *testing.T, email string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(email, "correct-horse-battery")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"
	user.Password = ""
	return user
}

func TestPostgresUserStore_Create(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		t.Run("creates user row", func(t *testing.T) {
			user := newStoredUser(t, "alice@example.com")

			require.NoError(t, userStore.Create(ctx, user))

			got, err := userStore.GetByID(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, user.Email, got.Email)
			assert.Equal(t, user.HashedPassword, got.HashedPassword)
		})

		t.Run("duplicate email", func(t *testing.T) {
			first := newStoredUser(t, "dup@example.com")
			require.NoError(t, userStore.Create(ctx, first))

			second := newStoredUser(t, "dup@example.com")
			err := userStore.Create(ctx, second)
			assert.ErrorIs(t, err, store.ErrEmailExists)
		})
	})
}

func TestPostgresUserStore_Get(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		user := newStoredUser(t, "bob@example.com")
		require.NoError(t, userStore.Create(ctx, user))

		t.Run("by email", func(t *testing.T) {
			got, err := userStore.GetByEmail(ctx, "bob@example.com")
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
		})

		t.Run("unknown email", func(t *testing.T) {
			_, err := userStore.GetByEmail(ctx, "ghost@example.com")
			assert.ErrorIs(t, err, store.ErrUserNotFound)
		})

		t.Run("unknown id", func(t *testing.T) {
			_, err := userStore.GetByID(ctx, uuid.New())
			assert.ErrorIs(t, err, store.ErrUserNotFound)
		})
	})
}

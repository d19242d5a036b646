package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/models"
)

func TestUserPostgresStorage_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := newTestDB(t)
		storage := NewUserPostgresStorage(db)

		err := storage.Create(context.Background(), &models.User{
			Username: "john",
			Email:    "john@example.com",
			Password: "hash",
		})
		assert.NoError(t, err)

		stored, err := storage.GetByUsername(context.Background(), "john")
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", stored.Email)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		db := newTestDB(t)
		storage := NewUserPostgresStorage(db)

		require.NoError(t, storage.Create(context.Background(), &models.User{
			Username: "john", Email: "john@example.com",
		}))

		err := storage.Create(context.Background(), &models.User{
			Username: "johnny", Email: "john@example.com",
		})
		assert.True(t, apperrors.Is(err, apperrors.KindConflict), "got %v", err)
	})
}

func TestUserPostgresStorage_Get(t *testing.T) {
	db := newTestDB(t)
	storage := NewUserPostgresStorage(db)

	john := createTestUser(t, db, "john")

	t.Run("by id", func(t *testing.T) {
		stored, err := storage.GetByID(context.Background(), john.ID)
		require.NoError(t, err)
		assert.Equal(t, "john", stored.Username)
	})

	t.Run("by email", func(t *testing.T) {
		stored, err := storage.GetByEmail(context.Background(), "john@example.com")
		require.NoError(t, err)
		assert.Equal(t, john.ID, stored.ID)
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		_, err := storage.GetByUsername(context.Background(), "ghost")
		assert.True(t, apperrors.Is(err, apperrors.KindNotFound), "got %v", err)
	})
}

func TestUserPostgresStorage_Taken(t *testing.T) {
	db := newTestDB(t)
	storage := NewUserPostgresStorage(db)

	john := createTestUser(t, db, "john")

	taken, err := storage.UsernameTaken(context.Background(), "john", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = storage.UsernameTaken(context.Background(), "john", john.ID)
	require.NoError(t, err)
	assert.False(t, taken, "own row must be excluded")

	taken, err = storage.EmailTaken(context.Background(), "free@example.com", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserPostgresStorage_Update(t *testing.T) {
	db := newTestDB(t)
	storage := NewUserPostgresStorage(db)

	john := createTestUser(t, db, "john")
	john.Bio = "Updated bio"
	john.Image = "https://i.pravatar.cc/300"

	require.NoError(t, storage.Update(context.Background(), john))

	stored, err := storage.GetByID(context.Background(), john.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated bio", stored.Bio)
	assert.Equal(t, "https://i.pravatar.cc/300", stored.Image)
}

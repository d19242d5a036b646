package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/conduit/models"
)

func TestTagPostgresStorage_List(t *testing.T) {
	db := newTestDB(t)
	storage := NewTagPostgresStorage(db)

	t.Run("empty", func(t *testing.T) {
		names, err := storage.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("alphabetical", func(t *testing.T) {
		for _, name := range []string{"web", "go", "news"} {
			require.NoError(t, db.Create(&models.Tag{Name: name}).Error)
		}

		names, err := storage.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "news", "web"}, names)
	})
}

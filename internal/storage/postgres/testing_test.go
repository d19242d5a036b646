package postgres

import (
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/conduit/models"
)

// newTestDB creates an in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to connect to in-memory SQLite")
	t.Cleanup(func() { db.Close() })

	db.Exec("PRAGMA foreign_keys = ON")
	db.LogMode(false)

	err = db.AutoMigrate(models.All()...).Error
	require.NoError(t, err, "failed to migrate database schema")

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
	}
	require.NoError(t, db.Create(user).Error, "failed to create test user")
	return user
}

func createTestArticle(t *testing.T, db *gorm.DB, authorID uint, slug, title string) *models.Article {
	t.Helper()

	article := &models.Article{
		Slug:     slug,
		Title:    title,
		AuthorID: authorID,
	}
	require.NoError(t, db.Create(article).Error, "failed to create test article")
	return article
}

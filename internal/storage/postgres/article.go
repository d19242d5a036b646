package postgres

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/article"
	"github.com/VitaminP8/conduit/internal/pagination"
	"github.com/VitaminP8/conduit/models"
)

type ArticlePostgresStorage struct {
	db *gorm.DB
}

func NewArticlePostgresStorage(db *gorm.DB) *ArticlePostgresStorage {
	return &ArticlePostgresStorage{db: db}
}

// Create inserts the article, upserts its tags by name and writes the
// associations, all in one transaction.
func (s *ArticlePostgresStorage) Create(ctx context.Context, a *models.Article, tagNames []string) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("could not begin transaction: %w", tx.Error)
	}

	seen := make(map[string]bool, len(tagNames))
	tags := make([]models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		var t models.Tag
		if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(&t).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("could not upsert tag %q: %w", name, err)
		}
		tags = append(tags, t)
	}
	a.Tags = tags

	if err := tx.Create(a).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return apperrors.Conflict("article with this title already exists", err)
		}
		return fmt.Errorf("could not create article: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit article: %w", err)
	}
	return nil
}

func (s *ArticlePostgresStorage) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var a models.Article
	err := s.db.
		Preload("Author").
		Preload("Tags").
		Preload("FavoredUsers").
		Where("slug = ?", slug).
		First(&a).Error
	if err != nil {
		return nil, notFoundOr(err, "article", slug)
	}
	return &a, nil
}

func (s *ArticlePostgresStorage) SlugExists(ctx context.Context, slug string) (bool, error) {
	if err := checkCtx(ctx); err != nil {
		return false, err
	}

	var count int
	if err := s.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("could not check slug: %w", err)
	}
	return count > 0, nil
}

// Update writes the mutable columns only; the slug column is never touched.
func (s *ArticlePostgresStorage) Update(ctx context.Context, a *models.Article) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	err := s.db.Model(&models.Article{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"title":       a.Title,
		"description": a.Description,
		"body":        a.Body,
	}).Error
	if err != nil {
		return fmt.Errorf("could not update article: %w", err)
	}
	return nil
}

// Delete removes the article together with its favorite edges, comments and
// tag associations in one transaction. Tag rows themselves survive.
func (s *ArticlePostgresStorage) Delete(ctx context.Context, a *models.Article) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("could not begin transaction: %w", tx.Error)
	}

	steps := []func() error{
		func() error {
			return tx.Where("article_id = ?", a.ID).Delete(&models.FavoriteArticle{}).Error
		},
		func() error {
			return tx.Unscoped().Where("article_id = ?", a.ID).Delete(&models.Comment{}).Error
		},
		func() error {
			return tx.Exec("DELETE FROM article_tags WHERE article_id = ?", a.ID).Error
		},
		func() error {
			return tx.Unscoped().Where("id = ?", a.ID).Delete(&models.Article{}).Error
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			tx.Rollback()
			return fmt.Errorf("could not delete article: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit delete: %w", err)
	}
	return nil
}

// List applies the AND-composed filter, counts the whole set, then
// materializes one page ordered id desc. Count and page run against the same
// deferred predicate.
func (s *ArticlePostgresStorage) List(ctx context.Context, f article.Filter, page pagination.Options) (pagination.Paged[models.Article], error) {
	var out pagination.Paged[models.Article]
	if err := checkCtx(ctx); err != nil {
		return out, err
	}

	// A feed with an empty author set matches nothing; skip the round trips.
	if f.AuthorIDs != nil && len(f.AuthorIDs) == 0 {
		out.Items = []models.Article{}
		return out, nil
	}

	q := s.db.Model(&models.Article{})
	if f.Author != "" {
		q = q.Where("author_id IN (SELECT id FROM users WHERE username = ?)", f.Author)
	}
	if f.Tag != "" {
		q = q.Where(
			"id IN (SELECT article_id FROM article_tags JOIN tags ON tags.id = article_tags.tag_id WHERE tags.name = ?)",
			f.Tag,
		)
	}
	if f.FavoritedBy != "" {
		q = q.Where(
			"id IN (SELECT article_id FROM favorite_articles WHERE user_id IN (SELECT id FROM users WHERE username = ?))",
			f.FavoritedBy,
		)
	}
	if f.AuthorIDs != nil {
		q = q.Where("author_id IN (?)", f.AuthorIDs)
	}

	if err := q.Count(&out.Total).Error; err != nil {
		return out, fmt.Errorf("could not count articles: %w", err)
	}

	if err := checkCtx(ctx); err != nil {
		return out, err
	}

	err := q.
		Preload("Author").
		Preload("Tags").
		Preload("FavoredUsers").
		Order("id desc").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&out.Items).Error
	if err != nil {
		return out, fmt.Errorf("could not list articles: %w", err)
	}
	return out, nil
}

// Favorite mirrors ProfilePostgresStorage.Follow on the favorite edge table.
func (s *ArticlePostgresStorage) Favorite(ctx context.Context, userID, articleID uint) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("could not begin transaction: %w", tx.Error)
	}

	var edge models.FavoriteArticle
	err := tx.Where(models.FavoriteArticle{UserID: userID, ArticleID: articleID}).
		FirstOrCreate(&edge).Error
	if err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("could not create favorite edge: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit favorite: %w", err)
	}
	return nil
}

func (s *ArticlePostgresStorage) Unfavorite(ctx context.Context, userID, articleID uint) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	err := s.db.
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&models.FavoriteArticle{}).Error
	if err != nil {
		return fmt.Errorf("could not delete favorite edge: %w", err)
	}
	return nil
}

func (s *ArticlePostgresStorage) IsFavorited(ctx context.Context, userID, articleID uint) (bool, error) {
	if err := checkCtx(ctx); err != nil {
		return false, err
	}

	var count int
	err := s.db.Model(&models.FavoriteArticle{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("could not check favorite edge: %w", err)
	}
	return count > 0, nil
}

func (s *ArticlePostgresStorage) FavoritedArticleIDs(ctx context.Context, userID uint) (map[uint]bool, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var ids []uint
	err := s.db.Model(&models.FavoriteArticle{}).
		Where("user_id = ?", userID).
		Pluck("article_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("could not load favorites set: %w", err)
	}

	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

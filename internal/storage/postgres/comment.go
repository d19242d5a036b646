package postgres

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/VitaminP8/conduit/models"
)

type CommentPostgresStorage struct {
	db *gorm.DB
}

func NewCommentPostgresStorage(db *gorm.DB) *CommentPostgresStorage {
	return &CommentPostgresStorage{db: db}
}

func (s *CommentPostgresStorage) Create(ctx context.Context, comment *models.Comment) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	if err := s.db.Create(comment).Error; err != nil {
		return fmt.Errorf("could not create comment: %w", err)
	}
	return nil
}

func (s *CommentPostgresStorage) GetByID(ctx context.Context, articleID, commentID uint) (*models.Comment, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var comment models.Comment
	err := s.db.
		Where("id = ? AND article_id = ?", commentID, articleID).
		First(&comment).Error
	if err != nil {
		return nil, notFoundOr(err, "comment", fmt.Sprint(commentID))
	}
	return &comment, nil
}

func (s *CommentPostgresStorage) ListByArticle(ctx context.Context, articleID uint) ([]models.Comment, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var comments []models.Comment
	err := s.db.
		Preload("Author").
		Where("article_id = ?", articleID).
		Order("id desc").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not list comments: %w", err)
	}
	return comments, nil
}

func (s *CommentPostgresStorage) Delete(ctx context.Context, comment *models.Comment) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	err := s.db.Unscoped().Where("id = ?", comment.ID).Delete(&models.Comment{}).Error
	if err != nil {
		return fmt.Errorf("could not delete comment: %w", err)
	}
	return nil
}

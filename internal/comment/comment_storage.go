package comment

import (
	"context"

	"github.com/VitaminP8/conduit/models"
)

type CommentStorage interface {
	Create(ctx context.Context, comment *models.Comment) error
	// GetByID scopes the lookup to one article; a comment id belonging to
	// a different article is NotFound.
	GetByID(ctx context.Context, articleID, commentID uint) (*models.Comment, error)
	// ListByArticle returns comments newest first, authors preloaded.
	ListByArticle(ctx context.Context, articleID uint) ([]models.Comment, error)
	Delete(ctx context.Context, comment *models.Comment) error
}

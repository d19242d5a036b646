package comment

import (
	"context"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/article"
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
)

type DeleteCommentRequest struct {
	mediator.Command
	mediator.RequiresAuth
	Slug      string
	CommentID uint
}

type DeleteCommentHandler struct {
	comments CommentStorage
	articles article.ArticleStorage
}

func NewDeleteCommentHandler(comments CommentStorage, articles article.ArticleStorage) *DeleteCommentHandler {
	return &DeleteCommentHandler{comments: comments, articles: articles}
}

func (h *DeleteCommentHandler) Handle(ctx context.Context, req DeleteCommentRequest) (struct{}, error) {
	viewerID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return struct{}{}, err
	}

	a, err := h.articles.GetBySlug(ctx, req.Slug)
	if err != nil {
		return struct{}{}, err
	}

	c, err := h.comments.GetByID(ctx, a.ID, req.CommentID)
	if err != nil {
		return struct{}{}, err
	}

	// Deletable by the comment's author or by the owning article's author.
	if c.AuthorID != viewerID && a.AuthorID != viewerID {
		return struct{}{}, apperrors.Forbidden("you may not delete this comment")
	}

	if err := h.comments.Delete(ctx, c); err != nil {
		return struct{}{}, err
	}
	return struct{}{}, nil
}

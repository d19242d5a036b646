package article

import (
	"context"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
)

type DeleteArticleRequest struct {
	mediator.Command
	mediator.RequiresAuth
	Slug string
}

type DeleteArticleHandler struct {
	articles ArticleStorage
}

func NewDeleteArticleHandler(articles ArticleStorage) *DeleteArticleHandler {
	return &DeleteArticleHandler{articles: articles}
}

func (h *DeleteArticleHandler) Handle(ctx context.Context, req DeleteArticleRequest) (struct{}, error) {
	viewerID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return struct{}{}, err
	}

	a, err := h.articles.GetBySlug(ctx, req.Slug)
	if err != nil {
		return struct{}{}, err
	}
	if a.AuthorID != viewerID {
		return struct{}{}, apperrors.Forbidden("you are not the author of this article")
	}

	if err := h.articles.Delete(ctx, a); err != nil {
		return struct{}{}, err
	}
	return struct{}{}, nil
}

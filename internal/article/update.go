package article

import (
	"context"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/profile"
	"github.com/VitaminP8/conduit/internal/validation"
)

// UpdateArticleRequest merges the non-nil fields into the article. The slug
// stays what creation derived, even when the title changes.
type UpdateArticleRequest struct {
	mediator.Command
	mediator.RequiresAuth
	Slug        string
	Title       *string
	Description *string
	Body        *string
}

func NewUpdateArticleValidator() func(ctx context.Context, req UpdateArticleRequest) error {
	return func(ctx context.Context, req UpdateArticleRequest) error {
		errs := validation.New()
		if req.Title != nil && *req.Title == "" {
			errs.Add("title", "can't be blank")
		}
		if req.Description != nil && *req.Description == "" {
			errs.Add("description", "can't be blank")
		}
		if req.Body != nil && *req.Body == "" {
			errs.Add("body", "can't be blank")
		}
		return errs.Err()
	}
}

type UpdateArticleHandler struct {
	articles ArticleStorage
	profiles profile.ProfileStorage
}

func NewUpdateArticleHandler(articles ArticleStorage, profiles profile.ProfileStorage) *UpdateArticleHandler {
	return &UpdateArticleHandler{articles: articles, profiles: profiles}
}

func (h *UpdateArticleHandler) Handle(ctx context.Context, req UpdateArticleRequest) (SingleArticleResponse, error) {
	viewerID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return SingleArticleResponse{}, err
	}

	a, err := h.articles.GetBySlug(ctx, req.Slug)
	if err != nil {
		return SingleArticleResponse{}, err
	}
	if a.AuthorID != viewerID {
		return SingleArticleResponse{}, apperrors.Forbidden("you are not the author of this article")
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Body != nil {
		a.Body = *req.Body
	}

	if err := h.articles.Update(ctx, a); err != nil {
		return SingleArticleResponse{}, err
	}

	favorited, err := h.articles.IsFavorited(ctx, viewerID, a.ID)
	if err != nil {
		return SingleArticleResponse{}, err
	}
	viewer := &profile.Viewer{ID: viewerID, Favorites: map[uint]bool{a.ID: favorited}}
	return SingleArticleResponse{Article: MapArticle(a, viewer)}, nil
}

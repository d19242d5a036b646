package article

import (
	"context"

	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/profile"
)

type ArticleGetQuery struct {
	mediator.Query
	Slug string
}

type ArticleGetHandler struct {
	articles ArticleStorage
	profiles profile.ProfileStorage
}

func NewArticleGetHandler(articles ArticleStorage, profiles profile.ProfileStorage) *ArticleGetHandler {
	return &ArticleGetHandler{articles: articles, profiles: profiles}
}

func (h *ArticleGetHandler) Handle(ctx context.Context, req ArticleGetQuery) (SingleArticleResponse, error) {
	a, err := h.articles.GetBySlug(ctx, req.Slug)
	if err != nil {
		return SingleArticleResponse{}, err
	}

	var viewer *profile.Viewer
	if viewerID, err := auth.GetUserIDFromContext(ctx); err == nil {
		following, err := h.profiles.IsFollowing(ctx, viewerID, a.AuthorID)
		if err != nil {
			return SingleArticleResponse{}, err
		}
		favorited, err := h.articles.IsFavorited(ctx, viewerID, a.ID)
		if err != nil {
			return SingleArticleResponse{}, err
		}
		viewer = &profile.Viewer{
			ID:        viewerID,
			Following: map[uint]bool{a.AuthorID: following},
			Favorites: map[uint]bool{a.ID: favorited},
		}
	}

	return SingleArticleResponse{Article: MapArticle(a, viewer)}, nil
}

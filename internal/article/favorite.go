package article

import (
	"context"

	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/profile"
)

// FavoriteArticleRequest toggles a favorite edge: Favorite=true creates it,
// Favorite=false removes it. Idempotent in both directions. Favoriting your
// own article is allowed.
type FavoriteArticleRequest struct {
	mediator.Command
	mediator.RequiresAuth
	Slug     string
	Favorite bool
}

type FavoriteArticleHandler struct {
	articles ArticleStorage
	profiles profile.ProfileStorage
}

func NewFavoriteArticleHandler(articles ArticleStorage, profiles profile.ProfileStorage) *FavoriteArticleHandler {
	return &FavoriteArticleHandler{articles: articles, profiles: profiles}
}

func (h *FavoriteArticleHandler) Handle(ctx context.Context, req FavoriteArticleRequest) (SingleArticleResponse, error) {
	viewerID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return SingleArticleResponse{}, err
	}

	a, err := h.articles.GetBySlug(ctx, req.Slug)
	if err != nil {
		return SingleArticleResponse{}, err
	}

	if req.Favorite {
		err = h.articles.Favorite(ctx, viewerID, a.ID)
	} else {
		err = h.articles.Unfavorite(ctx, viewerID, a.ID)
	}
	if err != nil {
		return SingleArticleResponse{}, err
	}

	// Reload for a fresh favorites count.
	a, err = h.articles.GetBySlug(ctx, req.Slug)
	if err != nil {
		return SingleArticleResponse{}, err
	}

	following, err := h.profiles.IsFollowing(ctx, viewerID, a.AuthorID)
	if err != nil {
		return SingleArticleResponse{}, err
	}
	viewer := &profile.Viewer{
		ID:        viewerID,
		Following: map[uint]bool{a.AuthorID: following},
		Favorites: map[uint]bool{a.ID: req.Favorite},
	}
	return SingleArticleResponse{Article: MapArticle(a, viewer)}, nil
}

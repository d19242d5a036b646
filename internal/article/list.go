package article

import (
	"context"

	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/pagination"
	"github.com/VitaminP8/conduit/internal/profile"
)

type ListArticlesQuery struct {
	mediator.Query
	Author    string
	Tag       string
	Favorited string
	pagination.Options
}

type ListArticlesHandler struct {
	articles ArticleStorage
	profiles profile.ProfileStorage
}

func NewListArticlesHandler(articles ArticleStorage, profiles profile.ProfileStorage) *ListArticlesHandler {
	return &ListArticlesHandler{articles: articles, profiles: profiles}
}

func (h *ListArticlesHandler) Handle(ctx context.Context, req ListArticlesQuery) (ArticlesResponse, error) {
	viewer, err := h.loadViewer(ctx)
	if err != nil {
		return ArticlesResponse{}, err
	}

	filter := Filter{
		Author:      req.Author,
		Tag:         req.Tag,
		FavoritedBy: req.Favorited,
	}
	paged, err := h.articles.List(ctx, filter, req.Options.Normalize())
	if err != nil {
		return ArticlesResponse{}, err
	}

	return ArticlesResponse{
		Articles:      mapArticles(paged.Items, viewer),
		ArticlesCount: paged.Total,
	}, nil
}

// loadViewer snapshots the viewer's edge sets once, before mapping the page.
func (h *ListArticlesHandler) loadViewer(ctx context.Context) (*profile.Viewer, error) {
	viewerID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, nil
	}

	following, err := h.profiles.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	favorites, err := h.articles.FavoritedArticleIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	return &profile.Viewer{ID: viewerID, Following: following, Favorites: favorites}, nil
}

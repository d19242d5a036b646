package article

import (
	"context"

	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/pagination"
	"github.com/VitaminP8/conduit/internal/profile"
)

// FeedArticlesQuery lists articles authored by the users the viewer follows.
type FeedArticlesQuery struct {
	mediator.Query
	mediator.RequiresAuth
	pagination.Options
}

type FeedArticlesHandler struct {
	articles ArticleStorage
	profiles profile.ProfileStorage
}

func NewFeedArticlesHandler(articles ArticleStorage, profiles profile.ProfileStorage) *FeedArticlesHandler {
	return &FeedArticlesHandler{articles: articles, profiles: profiles}
}

func (h *FeedArticlesHandler) Handle(ctx context.Context, req FeedArticlesQuery) (ArticlesResponse, error) {
	viewerID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return ArticlesResponse{}, err
	}

	following, err := h.profiles.FollowingIDs(ctx, viewerID)
	if err != nil {
		return ArticlesResponse{}, err
	}
	favorites, err := h.articles.FavoritedArticleIDs(ctx, viewerID)
	if err != nil {
		return ArticlesResponse{}, err
	}
	viewer := &profile.Viewer{ID: viewerID, Following: following, Favorites: favorites}

	// Non-nil even when empty: a feed with no follows matches nothing.
	authorIDs := make([]uint, 0, len(following))
	for id := range following {
		authorIDs = append(authorIDs, id)
	}

	paged, err := h.articles.List(ctx, Filter{AuthorIDs: authorIDs}, req.Options.Normalize())
	if err != nil {
		return ArticlesResponse{}, err
	}

	return ArticlesResponse{
		Articles:      mapArticles(paged.Items, viewer),
		ArticlesCount: paged.Total,
	}, nil
}

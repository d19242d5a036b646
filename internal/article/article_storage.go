package article

import (
	"context"

	"github.com/VitaminP8/conduit/internal/pagination"
	"github.com/VitaminP8/conduit/models"
)

// Filter is a set of optional predicates over articles, composed by AND.
// Zero-valued fields are pass-through.
type Filter struct {
	Author      string // author username
	Tag         string // matches articles carrying at least one tag of this name
	FavoritedBy string // username of a favoriting user
	// AuthorIDs restricts to the given authors. nil means unconstrained;
	// a non-nil empty slice matches nothing (a feed with no follows).
	AuthorIDs []uint
}

// ArticleStorage persists articles along with their tag associations and
// favorite edges. Create runs the article insert, the tag upsert-by-name and
// the association writes as one atomic unit. Favorite/Unfavorite are
// idempotent toggles executed inside a single transaction.
type ArticleStorage interface {
	Create(ctx context.Context, article *models.Article, tagNames []string) error
	// GetBySlug loads the article with author, tags and favorite edges.
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, article *models.Article) error
	// List counts the filtered set and then materializes one page of it,
	// ordered most-recent-first (id desc).
	List(ctx context.Context, filter Filter, page pagination.Options) (pagination.Paged[models.Article], error)

	Favorite(ctx context.Context, userID, articleID uint) error
	Unfavorite(ctx context.Context, userID, articleID uint) error
	IsFavorited(ctx context.Context, userID, articleID uint) (bool, error)
	// FavoritedArticleIDs returns the viewer's favorite set for projection.
	FavoritedArticleIDs(ctx context.Context, userID uint) (map[uint]bool, error)
}

package article

import (
	"context"

	"github.com/gosimple/slug"

	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/profile"
	"github.com/VitaminP8/conduit/internal/validation"
	"github.com/VitaminP8/conduit/models"
)

type CreateArticleRequest struct {
	mediator.Command
	mediator.RequiresAuth
	Title       string `validate:"required,max=200"`
	Description string `validate:"required"`
	Body        string `validate:"required"`
	TagList     []string
}

// NewCreateArticleValidator adds a slug-uniqueness rule on top of the tag
// rules: two titles that slugify identically cannot coexist.
func NewCreateArticleValidator(articles ArticleStorage) func(ctx context.Context, req CreateArticleRequest) error {
	return func(ctx context.Context, req CreateArticleRequest) error {
		errs := validation.New()
		errs.Merge(validation.Struct(req))

		if req.Title != "" {
			exists, err := articles.SlugExists(ctx, slug.Make(req.Title))
			if err != nil {
				return err
			}
			if exists {
				errs.Add("title", "is already used")
			}
		}

		return errs.Err()
	}
}

type CreateArticleHandler struct {
	articles ArticleStorage
	profiles profile.ProfileStorage
}

func NewCreateArticleHandler(articles ArticleStorage, profiles profile.ProfileStorage) *CreateArticleHandler {
	return &CreateArticleHandler{articles: articles, profiles: profiles}
}

func (h *CreateArticleHandler) Handle(ctx context.Context, req CreateArticleRequest) (SingleArticleResponse, error) {
	authorID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return SingleArticleResponse{}, err
	}

	a := &models.Article{
		// The slug is derived exactly once, here. Updates never re-derive it.
		Slug:        slug.Make(req.Title),
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		AuthorID:    authorID,
	}

	if err := h.articles.Create(ctx, a, req.TagList); err != nil {
		return SingleArticleResponse{}, err
	}

	created, err := h.articles.GetBySlug(ctx, a.Slug)
	if err != nil {
		return SingleArticleResponse{}, err
	}

	viewer := &profile.Viewer{ID: authorID}
	return SingleArticleResponse{Article: MapArticle(created, viewer)}, nil
}

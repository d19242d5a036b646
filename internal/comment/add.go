package comment

import (
	"context"

	"github.com/VitaminP8/conduit/internal/article"
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/profile"
	"github.com/VitaminP8/conduit/internal/validation"
	"github.com/VitaminP8/conduit/models"
)

type AddCommentRequest struct {
	mediator.Command
	mediator.RequiresAuth
	Slug string
	Body string `validate:"required"`
}

func NewAddCommentValidator() func(ctx context.Context, req AddCommentRequest) error {
	return func(ctx context.Context, req AddCommentRequest) error {
		errs := validation.New()
		errs.Merge(validation.Struct(req))
		return errs.Err()
	}
}

type AddCommentHandler struct {
	comments CommentStorage
	articles article.ArticleStorage
	users    UserGetter
}

// UserGetter is the slice of user storage the comment handlers need.
type UserGetter interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

func NewAddCommentHandler(comments CommentStorage, articles article.ArticleStorage, users UserGetter) *AddCommentHandler {
	return &AddCommentHandler{comments: comments, articles: articles, users: users}
}

func (h *AddCommentHandler) Handle(ctx context.Context, req AddCommentRequest) (SingleCommentResponse, error) {
	viewerID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return SingleCommentResponse{}, err
	}

	a, err := h.articles.GetBySlug(ctx, req.Slug)
	if err != nil {
		return SingleCommentResponse{}, err
	}

	c := &models.Comment{
		Body:      req.Body,
		ArticleID: a.ID,
		AuthorID:  viewerID,
	}
	if err := h.comments.Create(ctx, c); err != nil {
		return SingleCommentResponse{}, err
	}

	author, err := h.users.GetByID(ctx, viewerID)
	if err != nil {
		return SingleCommentResponse{}, err
	}
	c.Author = *author

	viewer := &profile.Viewer{ID: viewerID}
	return SingleCommentResponse{Comment: MapComment(c, viewer)}, nil
}

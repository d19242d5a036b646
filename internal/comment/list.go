package comment

import (
	"context"

	"github.com/VitaminP8/conduit/internal/article"
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/profile"
)

type ListCommentsQuery struct {
	mediator.Query
	Slug string
}

type ListCommentsHandler struct {
	comments CommentStorage
	articles article.ArticleStorage
	profiles profile.ProfileStorage
}

func NewListCommentsHandler(comments CommentStorage, articles article.ArticleStorage, profiles profile.ProfileStorage) *ListCommentsHandler {
	return &ListCommentsHandler{comments: comments, articles: articles, profiles: profiles}
}

func (h *ListCommentsHandler) Handle(ctx context.Context, req ListCommentsQuery) (CommentsResponse, error) {
	a, err := h.articles.GetBySlug(ctx, req.Slug)
	if err != nil {
		return CommentsResponse{}, err
	}

	var viewer *profile.Viewer
	if viewerID, err := auth.GetUserIDFromContext(ctx); err == nil {
		following, err := h.profiles.FollowingIDs(ctx, viewerID)
		if err != nil {
			return CommentsResponse{}, err
		}
		viewer = &profile.Viewer{ID: viewerID, Following: following}
	}

	comments, err := h.comments.ListByArticle(ctx, a.ID)
	if err != nil {
		return CommentsResponse{}, err
	}

	dtos := make([]CommentDTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, MapComment(&comments[i], viewer))
	}
	return CommentsResponse{Comments: dtos}, nil
}

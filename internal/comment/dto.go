package comment

import (
	"time"

	"github.com/VitaminP8/conduit/internal/profile"
	"github.com/VitaminP8/conduit/models"
)

type CommentDTO struct {
	ID        uint               `json:"id"`
	Body      string             `json:"body"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Author    profile.ProfileDTO `json:"author"`
}

type SingleCommentResponse struct {
	Comment CommentDTO `json:"comment"`
}

type CommentsResponse struct {
	Comments []CommentDTO `json:"comments"`
}

func MapComment(c *models.Comment, viewer *profile.Viewer) CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Author:    profile.MapProfile(&c.Author, viewer),
	}
}

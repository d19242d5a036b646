package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/comment"
	"github.com/VitaminP8/conduit/internal/mediator"
)

type commentBody struct {
	Comment struct {
		Body string `json:"body"`
	} `json:"comment"`
}

func (s *Server) handleAddComment(c *gin.Context) {
	var body commentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.writeError(c, apperrors.ValidationField("body", "is invalid"))
		return
	}

	req := comment.AddCommentRequest{Slug: c.Param("slug"), Body: body.Comment.Body}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.addComment)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (s *Server) handleListComments(c *gin.Context) {
	req := comment.ListCommentsQuery{Slug: c.Param("slug")}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.listComments)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleDeleteComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		s.writeError(c, apperrors.NotFound("comment", c.Param("id")))
		return
	}

	req := comment.DeleteCommentRequest{Slug: c.Param("slug"), CommentID: uint(id)}
	if _, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.deleteComment); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

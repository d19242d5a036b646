package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/tag"
)

func (s *Server) handleListTags(c *gin.Context) {
	res, err := mediator.Send(c.Request.Context(), s.pipeline, tag.ListTagsQuery{}, s.listTags)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

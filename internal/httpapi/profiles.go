package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/profile"
)

func (s *Server) handleProfileGet(c *gin.Context) {
	req := profile.ProfileGetQuery{Username: c.Param("username")}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.profileGet)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleFollow(c *gin.Context) {
	s.toggleFollow(c, true)
}

func (s *Server) handleUnfollow(c *gin.Context) {
	s.toggleFollow(c, false)
}

func (s *Server) toggleFollow(c *gin.Context, follow bool) {
	req := profile.ProfileFollowRequest{Username: c.Param("username"), Follow: follow}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.profileFollow)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

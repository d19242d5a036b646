package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/user"
)

type userBody struct {
	User struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Bio      *string `json:"bio"`
		Image    *string `json:"image"`
	} `json:"user"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var body userBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.writeError(c, apperrors.ValidationField("body", "is invalid"))
		return
	}

	req := user.RegisterRequest{
		Username: deref(body.User.Username),
		Email:    deref(body.User.Email),
		Password: deref(body.User.Password),
	}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.register)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (s *Server) handleLogin(c *gin.Context) {
	var body userBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.writeError(c, apperrors.ValidationField("body", "is invalid"))
		return
	}

	req := user.LoginRequest{
		Email:    deref(body.User.Email),
		Password: deref(body.User.Password),
	}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.login)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleCurrentUser(c *gin.Context) {
	res, err := mediator.Send(c.Request.Context(), s.pipeline, user.CurrentUserQuery{}, s.currentUser)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleUpdateUser(c *gin.Context) {
	var body userBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.writeError(c, apperrors.ValidationField("body", "is invalid"))
		return
	}

	req := user.UpdateUserRequest{
		Username: body.User.Username,
		Email:    body.User.Email,
		Password: body.User.Password,
		Bio:      body.User.Bio,
		Image:    body.User.Image,
	}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.updateUser)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

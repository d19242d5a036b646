package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/article"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/pagination"
)

type articleBody struct {
	Article struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Body        *string  `json:"body"`
		TagList     []string `json:"tagList"`
	} `json:"article"`
}

func (s *Server) handleListArticles(c *gin.Context) {
	var page pagination.Options
	if err := c.ShouldBindQuery(&page); err != nil {
		s.writeError(c, apperrors.ValidationField("query", "is invalid"))
		return
	}

	req := article.ListArticlesQuery{
		Author:    c.Query("author"),
		Tag:       c.Query("tag"),
		Favorited: c.Query("favorited"),
		Options:   page,
	}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.listArticles)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleFeedArticles(c *gin.Context) {
	var page pagination.Options
	if err := c.ShouldBindQuery(&page); err != nil {
		s.writeError(c, apperrors.ValidationField("query", "is invalid"))
		return
	}

	req := article.FeedArticlesQuery{Options: page}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.feedArticles)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleGetArticle(c *gin.Context) {
	req := article.ArticleGetQuery{Slug: c.Param("slug")}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.getArticle)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleCreateArticle(c *gin.Context) {
	var body articleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.writeError(c, apperrors.ValidationField("body", "is invalid"))
		return
	}

	req := article.CreateArticleRequest{
		Title:       deref(body.Article.Title),
		Description: deref(body.Article.Description),
		Body:        deref(body.Article.Body),
		TagList:     body.Article.TagList,
	}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.createArticle)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (s *Server) handleUpdateArticle(c *gin.Context) {
	var body articleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.writeError(c, apperrors.ValidationField("body", "is invalid"))
		return
	}

	req := article.UpdateArticleRequest{
		Slug:        c.Param("slug"),
		Title:       body.Article.Title,
		Description: body.Article.Description,
		Body:        body.Article.Body,
	}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.updateArticle)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleDeleteArticle(c *gin.Context) {
	req := article.DeleteArticleRequest{Slug: c.Param("slug")}
	if _, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.deleteArticle); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleFavorite(c *gin.Context) {
	s.toggleFavorite(c, true)
}

func (s *Server) handleUnfavorite(c *gin.Context) {
	s.toggleFavorite(c, false)
}

func (s *Server) toggleFavorite(c *gin.Context, favorite bool) {
	req := article.FavoriteArticleRequest{Slug: c.Param("slug"), Favorite: favorite}
	res, err := mediator.Send(c.Request.Context(), s.pipeline, req, s.favoriteArticle)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

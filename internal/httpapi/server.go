// Package httpapi is the JSON/HTTP boundary: routes, auth middleware, request
// construction and error translation. No business rules live here.
package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/VitaminP8/conduit/internal/article"
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/comment"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/profile"
	"github.com/VitaminP8/conduit/internal/tag"
	"github.com/VitaminP8/conduit/internal/user"
)

// Server holds the pipeline and every use-case handler, injected at startup.
type Server struct {
	pipeline *mediator.Pipeline
	issuer   *auth.TokenIssuer
	logger   zerolog.Logger

	register    *user.RegisterHandler
	login       *user.LoginHandler
	currentUser *user.CurrentUserHandler
	updateUser  *user.UpdateUserHandler

	profileGet    *profile.ProfileGetHandler
	profileFollow *profile.ProfileFollowHandler

	listArticles    *article.ListArticlesHandler
	feedArticles    *article.FeedArticlesHandler
	getArticle      *article.ArticleGetHandler
	createArticle   *article.CreateArticleHandler
	updateArticle   *article.UpdateArticleHandler
	deleteArticle   *article.DeleteArticleHandler
	favoriteArticle *article.FavoriteArticleHandler

	addComment    *comment.AddCommentHandler
	listComments  *comment.ListCommentsHandler
	deleteComment *comment.DeleteCommentHandler

	listTags *tag.ListTagsHandler
}

type Handlers struct {
	Register    *user.RegisterHandler
	Login       *user.LoginHandler
	CurrentUser *user.CurrentUserHandler
	UpdateUser  *user.UpdateUserHandler

	ProfileGet    *profile.ProfileGetHandler
	ProfileFollow *profile.ProfileFollowHandler

	ListArticles    *article.ListArticlesHandler
	FeedArticles    *article.FeedArticlesHandler
	GetArticle      *article.ArticleGetHandler
	CreateArticle   *article.CreateArticleHandler
	UpdateArticle   *article.UpdateArticleHandler
	DeleteArticle   *article.DeleteArticleHandler
	FavoriteArticle *article.FavoriteArticleHandler

	AddComment    *comment.AddCommentHandler
	ListComments  *comment.ListCommentsHandler
	DeleteComment *comment.DeleteCommentHandler

	ListTags *tag.ListTagsHandler
}

func NewServer(pipeline *mediator.Pipeline, issuer *auth.TokenIssuer, logger zerolog.Logger, h Handlers) *Server {
	return &Server{
		pipeline: pipeline,
		issuer:   issuer,
		logger:   logger,

		register:    h.Register,
		login:       h.Login,
		currentUser: h.CurrentUser,
		updateUser:  h.UpdateUser,

		profileGet:    h.ProfileGet,
		profileFollow: h.ProfileFollow,

		listArticles:    h.ListArticles,
		feedArticles:    h.FeedArticles,
		getArticle:      h.GetArticle,
		createArticle:   h.CreateArticle,
		updateArticle:   h.UpdateArticle,
		deleteArticle:   h.DeleteArticle,
		favoriteArticle: h.FavoriteArticle,

		addComment:    h.AddComment,
		listComments:  h.ListComments,
		deleteComment: h.DeleteComment,

		listTags: h.ListTags,
	}
}

// Router builds the gin engine with all RealWorld routes under /api.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.authMiddleware())

	api := r.Group("/api")

	api.POST("/users", s.handleRegister)
	api.POST("/users/login", s.handleLogin)
	api.GET("/user", s.handleCurrentUser)
	api.PUT("/user", s.handleUpdateUser)

	api.GET("/profiles/:username", s.handleProfileGet)
	api.POST("/profiles/:username/follow", s.handleFollow)
	api.DELETE("/profiles/:username/follow", s.handleUnfollow)

	api.GET("/articles", s.handleListArticles)
	api.GET("/articles/feed", s.handleFeedArticles)
	api.GET("/articles/:slug", s.handleGetArticle)
	api.POST("/articles", s.handleCreateArticle)
	api.PUT("/articles/:slug", s.handleUpdateArticle)
	api.DELETE("/articles/:slug", s.handleDeleteArticle)
	api.POST("/articles/:slug/favorite", s.handleFavorite)
	api.DELETE("/articles/:slug/favorite", s.handleUnfavorite)

	api.POST("/articles/:slug/comments", s.handleAddComment)
	api.GET("/articles/:slug/comments", s.handleListComments)
	api.DELETE("/articles/:slug/comments/:id", s.handleDeleteComment)

	api.GET("/tags", s.handleListTags)

	return r
}

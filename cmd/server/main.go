package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/VitaminP8/conduit/internal/article"
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/comment"
	"github.com/VitaminP8/conduit/internal/config"
	"github.com/VitaminP8/conduit/internal/httpapi"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/profile"
	"github.com/VitaminP8/conduit/internal/storage/postgres"
	"github.com/VitaminP8/conduit/internal/tag"
	"github.com/VitaminP8/conduit/internal/user"
)

func main() {
	config.LoadEnv()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	log.Logger = logger

	db, err := postgres.Open()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	issuer := auth.NewTokenIssuer(
		config.GetEnv("JWT_SECRET"),
		time.Duration(config.GetEnvIntDefault("JWT_TTL_HOURS", 72))*time.Hour,
	)

	users := postgres.NewUserPostgresStorage(db)
	profiles := postgres.NewProfilePostgresStorage(db)
	articles := postgres.NewArticlePostgresStorage(db)
	comments := postgres.NewCommentPostgresStorage(db)
	tags := postgres.NewTagPostgresStorage(db)

	// Behavior order is fixed: authorization runs before validation so
	// anonymous callers never see validation detail.
	validate := mediator.NewValidationBehavior()
	mediator.RegisterValidator(validate, user.NewRegisterValidator(users))
	mediator.RegisterValidator(validate, user.NewLoginValidator())
	mediator.RegisterValidator(validate, user.NewUpdateUserValidator(users))
	mediator.RegisterValidator(validate, article.NewCreateArticleValidator(articles))
	mediator.RegisterValidator(validate, article.NewUpdateArticleValidator())
	mediator.RegisterValidator(validate, comment.NewAddCommentValidator())

	pipeline := mediator.NewPipeline(
		mediator.NewLoggingBehavior(logger),
		mediator.AuthorizationBehavior{},
		validate,
	)

	server := httpapi.NewServer(pipeline, issuer, logger, httpapi.Handlers{
		Register:    user.NewRegisterHandler(users, issuer),
		Login:       user.NewLoginHandler(users, issuer),
		CurrentUser: user.NewCurrentUserHandler(users, issuer),
		UpdateUser:  user.NewUpdateUserHandler(users, issuer),

		ProfileGet:    profile.NewProfileGetHandler(users, profiles),
		ProfileFollow: profile.NewProfileFollowHandler(users, profiles),

		ListArticles:    article.NewListArticlesHandler(articles, profiles),
		FeedArticles:    article.NewFeedArticlesHandler(articles, profiles),
		GetArticle:      article.NewArticleGetHandler(articles, profiles),
		CreateArticle:   article.NewCreateArticleHandler(articles, profiles),
		UpdateArticle:   article.NewUpdateArticleHandler(articles, profiles),
		DeleteArticle:   article.NewDeleteArticleHandler(articles),
		FavoriteArticle: article.NewFavoriteArticleHandler(articles, profiles),

		AddComment:    comment.NewAddCommentHandler(comments, articles, users),
		ListComments:  comment.NewListCommentsHandler(comments, articles, profiles),
		DeleteComment: comment.NewDeleteCommentHandler(comments, articles),

		ListTags: tag.NewListTagsHandler(tags),
	})

	addr := config.GetEnvDefault("HTTP_ADDR", ":8080")
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("server started")
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("shutdown error")
	}

	logger.Info().Msg("server stopped")
}

// Seeder fills the database with demo users, follow relations, tagged
// articles and comments. Intended for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/VitaminP8/conduit/internal/config"
	"github.com/VitaminP8/conduit/internal/storage/postgres"
	"github.com/VitaminP8/conduit/models"
)

func main() {
	userCount := flag.Int("users", 10, "number of users to create")
	articleCount := flag.Int("articles", 30, "number of articles to create")
	flag.Parse()

	config.LoadEnv()
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	db, err := postgres.Open()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	ctx := context.Background()
	users := postgres.NewUserPostgresStorage(db)
	profiles := postgres.NewProfilePostgresStorage(db)
	articles := postgres.NewArticlePostgresStorage(db)
	comments := postgres.NewCommentPostgresStorage(db)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to hash seed password")
	}

	seeded := make([]*models.User, 0, *userCount)
	for i := 0; i < *userCount; i++ {
		u := &models.User{
			Username: fmt.Sprintf("user%d", i+1),
			Email:    fmt.Sprintf("user%d@example.com", i+1),
			Password: string(hashed),
			Bio:      fmt.Sprintf("Bio of user %d", i+1),
		}
		if err := users.Create(ctx, u); err != nil {
			logger.Fatal().Err(err).Str("username", u.Username).Msg("failed to seed user")
		}
		seeded = append(seeded, u)
	}
	logger.Info().Int("count", len(seeded)).Msg("users seeded")

	// Everyone follows their neighbor.
	for i, u := range seeded {
		target := seeded[(i+1)%len(seeded)]
		if target.ID == u.ID {
			continue
		}
		if err := profiles.Follow(ctx, u.ID, target.ID); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed follow edge")
		}
	}

	tagPool := []string{"go", "web", "tutorial", "opinion", "news"}
	for i := 0; i < *articleCount; i++ {
		author := seeded[i%len(seeded)]
		title := fmt.Sprintf("Seed Article %d", i+1)
		a := &models.Article{
			Slug:        slug.Make(title),
			Title:       title,
			Description: fmt.Sprintf("Description %d", i+1),
			Body:        fmt.Sprintf("Body of seed article %d", i+1),
			AuthorID:    author.ID,
		}
		tags := []string{tagPool[i%len(tagPool)], tagPool[(i+2)%len(tagPool)]}
		if err := articles.Create(ctx, a, tags); err != nil {
			logger.Fatal().Err(err).Str("slug", a.Slug).Msg("failed to seed article")
		}

		commenter := seeded[(i+1)%len(seeded)]
		c := &models.Comment{
			Body:      fmt.Sprintf("First comment on %s", title),
			ArticleID: a.ID,
			AuthorID:  commenter.ID,
		}
		if err := comments.Create(ctx, c); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed comment")
		}

		if err := articles.Favorite(ctx, commenter.ID, a.ID); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed favorite edge")
		}
	}
	logger.Info().Int("count", *articleCount).Msg("articles seeded")
}

package comment_test

import (
	"context"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/comment"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/storage/postgres"
	"github.com/VitaminP8/conduit/models"
)

type fixture struct {
	db       *gorm.DB
	users    *postgres.UserPostgresStorage
	profiles *postgres.ProfilePostgresStorage
	articles *postgres.ArticlePostgresStorage
	comments *postgres.CommentPostgresStorage
	pipeline *mediator.Pipeline
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.LogMode(false)
	require.NoError(t, db.AutoMigrate(models.All()...).Error)

	validate := mediator.NewValidationBehavior()
	mediator.RegisterValidator(validate, comment.NewAddCommentValidator())

	return &fixture{
		db:       db,
		users:    postgres.NewUserPostgresStorage(db),
		profiles: postgres.NewProfilePostgresStorage(db),
		articles: postgres.NewArticlePostgresStorage(db),
		comments: postgres.NewCommentPostgresStorage(db),
		pipeline: mediator.NewPipeline(mediator.AuthorizationBehavior{}, validate),
	}
}

func (f *fixture) createUser(t *testing.T, username string) *models.User {
	t.Helper()

	u := &models.User{Username: username, Email: username + "@example.com", Password: "hashed"}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) createArticle(t *testing.T, authorID uint, slug, title string) *models.Article {
	t.Helper()

	a := &models.Article{Slug: slug, Title: title, Description: "d", Body: "b", AuthorID: authorID}
	require.NoError(t, f.articles.Create(context.Background(), a, nil))
	return a
}

func (f *fixture) addComment(t *testing.T, userID uint, slug, body string) comment.SingleCommentResponse {
	t.Helper()

	res, err := mediator.Send(auth.WithUserID(context.Background(), userID), f.pipeline,
		comment.AddCommentRequest{Slug: slug, Body: body},
		comment.NewAddCommentHandler(f.comments, f.articles, f.users))
	require.NoError(t, err)
	return res
}

func TestAddComment(t *testing.T) {
	t.Run("creates and projects the author", func(t *testing.T) {
		f := newFixture(t)
		author := f.createUser(t, "jake")
		reader := f.createUser(t, "jane")
		f.createArticle(t, author.ID, "test-article", "Test Article")

		res := f.addComment(t, reader.ID, "test-article", "Nice post!")

		assert.NotZero(t, res.Comment.ID)
		assert.Equal(t, "Nice post!", res.Comment.Body)
		assert.Equal(t, "jane", res.Comment.Author.Username)
	})

	t.Run("blank body rejected", func(t *testing.T) {
		f := newFixture(t)
		author := f.createUser(t, "jake")
		f.createArticle(t, author.ID, "test-article", "Test Article")

		_, err := mediator.Send(auth.WithUserID(context.Background(), author.ID), f.pipeline,
			comment.AddCommentRequest{Slug: "test-article"},
			comment.NewAddCommentHandler(f.comments, f.articles, f.users))

		require.True(t, apperrors.Is(err, apperrors.KindValidation), "got %v", err)
		assert.Equal(t, []string{"can't be blank"}, apperrors.FieldsOf(err)["body"])
	})

	t.Run("unknown article is not found", func(t *testing.T) {
		f := newFixture(t)
		reader := f.createUser(t, "jane")

		_, err := mediator.Send(auth.WithUserID(context.Background(), reader.ID), f.pipeline,
			comment.AddCommentRequest{Slug: "nope", Body: "hello"},
			comment.NewAddCommentHandler(f.comments, f.articles, f.users))

		assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run("anonymous caller rejected before validation", func(t *testing.T) {
		f := newFixture(t)

		_, err := mediator.Send(context.Background(), f.pipeline,
			comment.AddCommentRequest{Slug: "test-article"},
			comment.NewAddCommentHandler(f.comments, f.articles, f.users))

		assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized), "got %v", err)
	})
}

func TestListComments(t *testing.T) {
	f := newFixture(t)
	author := f.createUser(t, "jake")
	reader := f.createUser(t, "jane")
	f.createArticle(t, author.ID, "test-article", "Test Article")
	f.createArticle(t, author.ID, "other-article", "Other Article")
	f.addComment(t, reader.ID, "test-article", "first")
	f.addComment(t, author.ID, "test-article", "second")
	f.addComment(t, reader.ID, "other-article", "elsewhere")

	t.Run("newest first, scoped to the article", func(t *testing.T) {
		res, err := mediator.Send(context.Background(), f.pipeline,
			comment.ListCommentsQuery{Slug: "test-article"},
			comment.NewListCommentsHandler(f.comments, f.articles, f.profiles))

		require.NoError(t, err)
		require.Len(t, res.Comments, 2)
		assert.Equal(t, "second", res.Comments[0].Body)
		assert.Equal(t, "first", res.Comments[1].Body)
		assert.Equal(t, "jake", res.Comments[0].Author.Username)
		assert.Equal(t, "jane", res.Comments[1].Author.Username)
	})

	t.Run("follow state projected onto comment authors", func(t *testing.T) {
		ctx := auth.WithUserID(context.Background(), reader.ID)
		require.NoError(t, f.profiles.Follow(ctx, reader.ID, author.ID))

		res, err := mediator.Send(ctx, f.pipeline,
			comment.ListCommentsQuery{Slug: "test-article"},
			comment.NewListCommentsHandler(f.comments, f.articles, f.profiles))

		require.NoError(t, err)
		require.Len(t, res.Comments, 2)
		assert.True(t, res.Comments[0].Author.Following, "jake is followed")
		assert.False(t, res.Comments[1].Author.Following, "jane is the viewer")
	})
}

func TestDeleteComment(t *testing.T) {
	setup := func(t *testing.T) (*fixture, *models.User, *models.User, *models.User, uint) {
		f := newFixture(t)
		author := f.createUser(t, "jake")
		commenter := f.createUser(t, "jane")
		bystander := f.createUser(t, "bob")
		f.createArticle(t, author.ID, "test-article", "Test Article")
		res := f.addComment(t, commenter.ID, "test-article", "my two cents")
		return f, author, commenter, bystander, res.Comment.ID
	}

	deleteAs := func(f *fixture, userID, commentID uint) error {
		_, err := mediator.Send(auth.WithUserID(context.Background(), userID), f.pipeline,
			comment.DeleteCommentRequest{Slug: "test-article", CommentID: commentID},
			comment.NewDeleteCommentHandler(f.comments, f.articles))
		return err
	}

	t.Run("comment author may delete", func(t *testing.T) {
		f, _, commenter, _, id := setup(t)
		require.NoError(t, deleteAs(f, commenter.ID, id))

		comments, err := f.comments.ListByArticle(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("article author may delete", func(t *testing.T) {
		f, author, _, _, id := setup(t)
		assert.NoError(t, deleteAs(f, author.ID, id))
	})

	t.Run("anyone else forbidden", func(t *testing.T) {
		f, _, _, bystander, id := setup(t)

		err := deleteAs(f, bystander.ID, id)
		assert.True(t, apperrors.Is(err, apperrors.KindForbidden), "got %v", err)
	})

	t.Run("comment id from another article is not found", func(t *testing.T) {
		f, author, commenter, _, _ := setup(t)
		f.createArticle(t, author.ID, "other-article", "Other Article")
		other := f.addComment(t, commenter.ID, "other-article", "elsewhere")

		_, err := mediator.Send(auth.WithUserID(context.Background(), commenter.ID), f.pipeline,
			comment.DeleteCommentRequest{Slug: "test-article", CommentID: other.Comment.ID},
			comment.NewDeleteCommentHandler(f.comments, f.articles))

		assert.True(t, apperrors.Is(err, apperrors.KindNotFound), "got %v", err)
	})
}

package profile_test

import (
	"context"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/profile"
	"github.com/VitaminP8/conduit/internal/storage/postgres"
	"github.com/VitaminP8/conduit/models"
)

type fixture struct {
	db       *gorm.DB
	users    *postgres.UserPostgresStorage
	profiles *postgres.ProfilePostgresStorage
	pipeline *mediator.Pipeline
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.LogMode(false)
	require.NoError(t, db.AutoMigrate(models.All()...).Error)

	return &fixture{
		db:       db,
		users:    postgres.NewUserPostgresStorage(db),
		profiles: postgres.NewProfilePostgresStorage(db),
		pipeline: mediator.NewPipeline(mediator.AuthorizationBehavior{}, mediator.NewValidationBehavior()),
	}
}

func (f *fixture) createUser(t *testing.T, username string) *models.User {
	t.Helper()

	u := &models.User{Username: username, Email: username + "@example.com", Password: "hashed"}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func TestGetProfile(t *testing.T) {
	t.Run("guest sees following false", func(t *testing.T) {
		f := newFixture(t)
		jane := f.createUser(t, "Jane Doe")
		jane.Bio = "Writer"
		require.NoError(t, f.users.Update(context.Background(), jane))

		res, err := mediator.Send(context.Background(), f.pipeline,
			profile.ProfileGetQuery{Username: "Jane Doe"},
			profile.NewProfileGetHandler(f.users, f.profiles))

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", res.Profile.Username)
		assert.Equal(t, "Writer", res.Profile.Bio)
		assert.False(t, res.Profile.Following)
	})

	t.Run("follower sees following true", func(t *testing.T) {
		f := newFixture(t)
		john := f.createUser(t, "John Doe")
		jane := f.createUser(t, "Jane Doe")
		require.NoError(t, f.profiles.Follow(context.Background(), john.ID, jane.ID))

		ctx := auth.WithUserID(context.Background(), john.ID)
		res, err := mediator.Send(ctx, f.pipeline,
			profile.ProfileGetQuery{Username: "Jane Doe"},
			profile.NewProfileGetHandler(f.users, f.profiles))

		require.NoError(t, err)
		assert.True(t, res.Profile.Following)
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		f := newFixture(t)

		_, err := mediator.Send(context.Background(), f.pipeline,
			profile.ProfileGetQuery{Username: "nobody"},
			profile.NewProfileGetHandler(f.users, f.profiles))

		assert.True(t, apperrors.Is(err, apperrors.KindNotFound), "got %v", err)
	})
}

func TestFollowProfile(t *testing.T) {
	t.Run("follow then unfollow flips the flag", func(t *testing.T) {
		f := newFixture(t)
		john := f.createUser(t, "John Doe")
		f.createUser(t, "Jane Doe")
		ctx := auth.WithUserID(context.Background(), john.ID)
		h := profile.NewProfileFollowHandler(f.users, f.profiles)

		res, err := mediator.Send(ctx, f.pipeline,
			profile.ProfileFollowRequest{Username: "Jane Doe", Follow: true}, h)
		require.NoError(t, err)
		assert.True(t, res.Profile.Following)

		res, err = mediator.Send(ctx, f.pipeline,
			profile.ProfileFollowRequest{Username: "Jane Doe", Follow: false}, h)
		require.NoError(t, err)
		assert.False(t, res.Profile.Following)
	})

	t.Run("repeated follows are idempotent", func(t *testing.T) {
		f := newFixture(t)
		john := f.createUser(t, "John Doe")
		jane := f.createUser(t, "Jane Doe")
		ctx := auth.WithUserID(context.Background(), john.ID)
		h := profile.NewProfileFollowHandler(f.users, f.profiles)

		for i := 0; i < 3; i++ {
			_, err := mediator.Send(ctx, f.pipeline,
				profile.ProfileFollowRequest{Username: "Jane Doe", Follow: true}, h)
			require.NoError(t, err)
		}

		var count int
		require.NoError(t, f.db.Model(&models.FollowerUser{}).
			Where("follower_id = ? AND following_id = ?", john.ID, jane.ID).
			Count(&count).Error)
		assert.Equal(t, 1, count)
	})

	t.Run("self follow rejected", func(t *testing.T) {
		f := newFixture(t)
		john := f.createUser(t, "John Doe")
		ctx := auth.WithUserID(context.Background(), john.ID)

		_, err := mediator.Send(ctx, f.pipeline,
			profile.ProfileFollowRequest{Username: "John Doe", Follow: true},
			profile.NewProfileFollowHandler(f.users, f.profiles))

		require.True(t, apperrors.Is(err, apperrors.KindValidation), "got %v", err)
		assert.Equal(t, []string{"cannot follow yourself"}, apperrors.FieldsOf(err)["username"])
	})

	t.Run("anonymous caller rejected", func(t *testing.T) {
		f := newFixture(t)
		f.createUser(t, "Jane Doe")

		_, err := mediator.Send(context.Background(), f.pipeline,
			profile.ProfileFollowRequest{Username: "Jane Doe", Follow: true},
			profile.NewProfileFollowHandler(f.users, f.profiles))

		assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
	})

	t.Run("unknown target is not found", func(t *testing.T) {
		f := newFixture(t)
		john := f.createUser(t, "John Doe")
		ctx := auth.WithUserID(context.Background(), john.ID)

		_, err := mediator.Send(ctx, f.pipeline,
			profile.ProfileFollowRequest{Username: "nobody", Follow: true},
			profile.NewProfileFollowHandler(f.users, f.profiles))

		assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})
}

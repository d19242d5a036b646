package user

import (
	"context"

	"github.com/VitaminP8/conduit/models"
)

type UserStorage interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// UsernameTaken and EmailTaken back the uniqueness validation rules.
	// excludeID ignores the given user (0 for none), so updating yourself
	// does not trip over your own row.
	UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
}

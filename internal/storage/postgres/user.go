package postgres

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/models"
)

type UserPostgresStorage struct {
	db *gorm.DB
}

func NewUserPostgresStorage(db *gorm.DB) *UserPostgresStorage {
	return &UserPostgresStorage{db: db}
}

func (s *UserPostgresStorage) Create(ctx context.Context, user *models.User) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	if err := s.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			// Pre-checked by validation; only a concurrent register can
			// land here.
			return apperrors.Conflict("username or email already taken", err)
		}
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

func (s *UserPostgresStorage) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, notFoundOr(err, "user", fmt.Sprint(id))
	}
	return &user, nil
}

func (s *UserPostgresStorage) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "user", email)
	}
	return &user, nil
}

func (s *UserPostgresStorage) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "user", username)
	}
	return &user, nil
}

func (s *UserPostgresStorage) Update(ctx context.Context, user *models.User) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	err := s.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
		"password": user.Password,
		"bio":      user.Bio,
		"image":    user.Image,
	}).Error
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("username or email already taken", err)
		}
		return fmt.Errorf("could not update user: %w", err)
	}
	return nil
}

func (s *UserPostgresStorage) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	return s.taken(ctx, "username = ?", username, excludeID)
}

func (s *UserPostgresStorage) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	return s.taken(ctx, "email = ?", email, excludeID)
}

func (s *UserPostgresStorage) taken(ctx context.Context, cond, value string, excludeID uint) (bool, error) {
	if err := checkCtx(ctx); err != nil {
		return false, err
	}

	var count int
	q := s.db.Model(&models.User{}).Where(cond, value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("could not check uniqueness: %w", err)
	}
	return count > 0, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/VitaminP8/conduit/models"
)

type ProfilePostgresStorage struct {
	db *gorm.DB
}

func NewProfilePostgresStorage(db *gorm.DB) *ProfilePostgresStorage {
	return &ProfilePostgresStorage{db: db}
}

// Follow creates the follower -> following edge if it does not exist. The
// existence check and the insert run in one transaction; a duplicate insert
// lost to a concurrent identical request is absorbed as a no-op.
func (s *ProfilePostgresStorage) Follow(ctx context.Context, followerID, followingID uint) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("could not begin transaction: %w", tx.Error)
	}

	var edge models.FollowerUser
	err := tx.Where(models.FollowerUser{FollowerID: followerID, FollowingID: followingID}).
		FirstOrCreate(&edge).Error
	if err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("could not create follow edge: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit follow: %w", err)
	}
	return nil
}

// Unfollow removes the edge; removing an absent edge is a no-op.
func (s *ProfilePostgresStorage) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	err := s.db.
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.FollowerUser{}).Error
	if err != nil {
		return fmt.Errorf("could not delete follow edge: %w", err)
	}
	return nil
}

func (s *ProfilePostgresStorage) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	if err := checkCtx(ctx); err != nil {
		return false, err
	}

	var count int
	err := s.db.Model(&models.FollowerUser{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("could not check follow edge: %w", err)
	}
	return count > 0, nil
}

func (s *ProfilePostgresStorage) FollowingIDs(ctx context.Context, followerID uint) (map[uint]bool, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var ids []uint
	err := s.db.Model(&models.FollowerUser{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("could not load following set: %w", err)
	}

	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

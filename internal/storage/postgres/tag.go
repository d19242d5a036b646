package postgres

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/VitaminP8/conduit/models"
)

type TagPostgresStorage struct {
	db *gorm.DB
}

func NewTagPostgresStorage(db *gorm.DB) *TagPostgresStorage {
	return &TagPostgresStorage{db: db}
}

func (s *TagPostgresStorage) List(ctx context.Context) ([]string, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var names []string
	err := s.db.Model(&models.Tag{}).Order("name").Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("could not list tags: %w", err)
	}
	return names, nil
}

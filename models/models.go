package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"unique_index;not null"`
	Email    string `gorm:"unique_index;not null"`
	Password string
	Bio      string
	Image    string
	Articles []Article `gorm:"foreignkey:AuthorID"`
	Comments []Comment `gorm:"foreignkey:AuthorID"`
}

// FollowerUser is a directed follow edge: follower -> following.
// Edges are hard-deleted, so no gorm.Model here (a soft-deleted row would
// collide with the composite unique index on a re-follow).
type FollowerUser struct {
	ID          uint `gorm:"primary_key"`
	FollowerID  uint `gorm:"unique_index:idx_follower_following;not null"`
	FollowingID uint `gorm:"unique_index:idx_follower_following;not null"`
	CreatedAt   time.Time
}

type Article struct {
	gorm.Model
	Slug         string `gorm:"unique_index;not null"`
	Title        string `gorm:"not null"`
	Description  string
	Body         string
	AuthorID     uint `gorm:"index;not null"`
	Author       User
	Tags         []Tag             `gorm:"many2many:article_tags"`
	FavoredUsers []FavoriteArticle `gorm:"foreignkey:ArticleID"`
}

// FavoriteArticle is a favorite edge: user -> article. Hard-deleted, same
// reasoning as FollowerUser.
type FavoriteArticle struct {
	ID        uint `gorm:"primary_key"`
	UserID    uint `gorm:"unique_index:idx_user_article;not null"`
	ArticleID uint `gorm:"unique_index:idx_user_article;not null"`
	CreatedAt time.Time
}

type Tag struct {
	gorm.Model
	Name string `gorm:"unique_index;not null"`
}

type Comment struct {
	gorm.Model
	Body      string `gorm:"not null"`
	ArticleID uint   `gorm:"index;not null"`
	AuthorID  uint   `gorm:"index;not null"`
	Author    User
}

// All lists every entity in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&FollowerUser{},
		&Article{},
		&FavoriteArticle{},
		&Tag{},
		&Comment{},
	}
}

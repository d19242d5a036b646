package article

import (
	"time"

	"github.com/VitaminP8/conduit/internal/profile"
	"github.com/VitaminP8/conduit/models"
)

type ArticleDTO struct {
	Slug           string             `json:"slug"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Body           string             `json:"body"`
	TagList        []string           `json:"tagList"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
	Favorited      bool               `json:"favorited"`
	FavoritesCount int                `json:"favoritesCount"`
	Author         profile.ProfileDTO `json:"author"`
}

type SingleArticleResponse struct {
	Article ArticleDTO `json:"article"`
}

type ArticlesResponse struct {
	Articles      []ArticleDTO `json:"articles"`
	ArticlesCount int          `json:"articlesCount"`
}

// MapArticle projects an article for the viewer. It consults only data
// already loaded on the entity and the viewer snapshot.
func MapArticle(a *models.Article, viewer *profile.Viewer) ArticleDTO {
	tags := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		tags = append(tags, t.Name)
	}

	return ArticleDTO{
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		TagList:        tags,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		Favorited:      viewer.HasFavorited(a.ID),
		FavoritesCount: len(a.FavoredUsers),
		Author:         profile.MapProfile(&a.Author, viewer),
	}
}

func mapArticles(articles []models.Article, viewer *profile.Viewer) []ArticleDTO {
	dtos := make([]ArticleDTO, 0, len(articles))
	for i := range articles {
		dtos = append(dtos, MapArticle(&articles[i], viewer))
	}
	return dtos
}

package profile

import "github.com/VitaminP8/conduit/models"

type ProfileDTO struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

type ProfileResponse struct {
	Profile ProfileDTO `json:"profile"`
}

// MapProfile projects a user relative to the viewer's perspective.
func MapProfile(u *models.User, viewer *Viewer) ProfileDTO {
	return ProfileDTO{
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     u.Image,
		Following: viewer.IsFollowing(u.ID),
	}
}

package user

import (
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/models"
)

type UserDTO struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

type UserResponse struct {
	User UserDTO `json:"user"`
}

// mapUser projects a user with a freshly issued token.
func mapUser(u *models.User, issuer *auth.TokenIssuer) (UserResponse, error) {
	token, err := issuer.Issue(u.ID, u.Username)
	if err != nil {
		return UserResponse{}, err
	}
	return UserResponse{User: UserDTO{
		Email:    u.Email,
		Token:    token,
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}}, nil
}

package profile

import (
	"context"

	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/user"
)

// ProfileGetQuery is anonymous: guests see the profile with following=false.
type ProfileGetQuery struct {
	mediator.Query
	Username string
}

type ProfileGetHandler struct {
	users    user.UserStorage
	profiles ProfileStorage
}

func NewProfileGetHandler(users user.UserStorage, profiles ProfileStorage) *ProfileGetHandler {
	return &ProfileGetHandler{users: users, profiles: profiles}
}

func (h *ProfileGetHandler) Handle(ctx context.Context, req ProfileGetQuery) (ProfileResponse, error) {
	target, err := h.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return ProfileResponse{}, err
	}

	var viewer *Viewer
	if viewerID, err := auth.GetUserIDFromContext(ctx); err == nil {
		following, err := h.profiles.IsFollowing(ctx, viewerID, target.ID)
		if err != nil {
			return ProfileResponse{}, err
		}
		viewer = &Viewer{ID: viewerID, Following: map[uint]bool{target.ID: following}}
	}

	return ProfileResponse{Profile: MapProfile(target, viewer)}, nil
}

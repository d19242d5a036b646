package profile

import (
	"context"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/user"
)

// ProfileFollowRequest toggles a follow edge in either direction: Follow=true
// creates the edge, Follow=false removes it. Both directions are idempotent.
type ProfileFollowRequest struct {
	mediator.Command
	mediator.RequiresAuth
	Username string
	Follow   bool
}

type ProfileFollowHandler struct {
	users    user.UserStorage
	profiles ProfileStorage
}

func NewProfileFollowHandler(users user.UserStorage, profiles ProfileStorage) *ProfileFollowHandler {
	return &ProfileFollowHandler{users: users, profiles: profiles}
}

func (h *ProfileFollowHandler) Handle(ctx context.Context, req ProfileFollowRequest) (ProfileResponse, error) {
	viewerID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return ProfileResponse{}, err
	}

	target, err := h.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return ProfileResponse{}, err
	}

	// Self-follow would leak your own articles into your follow feed.
	if target.ID == viewerID {
		return ProfileResponse{}, apperrors.ValidationField("username", "cannot follow yourself")
	}

	if req.Follow {
		err = h.profiles.Follow(ctx, viewerID, target.ID)
	} else {
		err = h.profiles.Unfollow(ctx, viewerID, target.ID)
	}
	if err != nil {
		return ProfileResponse{}, err
	}

	viewer := &Viewer{ID: viewerID, Following: map[uint]bool{target.ID: req.Follow}}
	return ProfileResponse{Profile: MapProfile(target, viewer)}, nil
}

package user

import (
	"context"

	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
)

type CurrentUserQuery struct {
	mediator.Query
	mediator.RequiresAuth
}

type CurrentUserHandler struct {
	users  UserStorage
	issuer *auth.TokenIssuer
}

func NewCurrentUserHandler(users UserStorage, issuer *auth.TokenIssuer) *CurrentUserHandler {
	return &CurrentUserHandler{users: users, issuer: issuer}
}

func (h *CurrentUserHandler) Handle(ctx context.Context, req CurrentUserQuery) (UserResponse, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return UserResponse{}, err
	}

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		return UserResponse{}, err
	}

	return mapUser(user, h.issuer)
}

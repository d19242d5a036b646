package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/validation"
)

type LoginRequest struct {
	mediator.Command
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func NewLoginValidator() func(ctx context.Context, req LoginRequest) error {
	return func(ctx context.Context, req LoginRequest) error {
		errs := validation.New()
		errs.Merge(validation.Struct(req))
		return errs.Err()
	}
}

type LoginHandler struct {
	users  UserStorage
	issuer *auth.TokenIssuer
}

func NewLoginHandler(users UserStorage, issuer *auth.TokenIssuer) *LoginHandler {
	return &LoginHandler{users: users, issuer: issuer}
}

func (h *LoginHandler) Handle(ctx context.Context, req LoginRequest) (UserResponse, error) {
	// Unknown email and wrong password both map to the same error so that
	// callers cannot probe which accounts exist.
	user, err := h.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return UserResponse{}, apperrors.Unauthorized()
		}
		return UserResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return UserResponse{}, apperrors.Unauthorized()
	}

	return mapUser(user, h.issuer)
}

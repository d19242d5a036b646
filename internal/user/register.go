package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/validation"
	"github.com/VitaminP8/conduit/models"
)

type RegisterRequest struct {
	mediator.Command
	Username string `validate:"required,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// NewRegisterValidator combines the tag rules with store-backed uniqueness
// checks. Registered with the validation behavior at startup.
func NewRegisterValidator(users UserStorage) func(ctx context.Context, req RegisterRequest) error {
	return func(ctx context.Context, req RegisterRequest) error {
		errs := validation.New()
		errs.Merge(validation.Struct(req))

		if req.Username != "" {
			taken, err := users.UsernameTaken(ctx, req.Username, 0)
			if err != nil {
				return err
			}
			if taken {
				errs.Add("username", "is already taken")
			}
		}
		if req.Email != "" {
			taken, err := users.EmailTaken(ctx, req.Email, 0)
			if err != nil {
				return err
			}
			if taken {
				errs.Add("email", "is already used")
			}
		}

		return errs.Err()
	}
}

type RegisterHandler struct {
	users  UserStorage
	issuer *auth.TokenIssuer
}

func NewRegisterHandler(users UserStorage, issuer *auth.TokenIssuer) *RegisterHandler {
	return &RegisterHandler{users: users, issuer: issuer}
}

func (h *RegisterHandler) Handle(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := h.users.Create(ctx, user); err != nil {
		return UserResponse{}, err
	}

	return mapUser(user, h.issuer)
}

package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/VitaminP8/conduit/internal/auth"
	"github.com/VitaminP8/conduit/internal/mediator"
	"github.com/VitaminP8/conduit/internal/validation"
)

// UpdateUserRequest carries optional fields; nil means "leave unchanged".
type UpdateUserRequest struct {
	mediator.Command
	mediator.RequiresAuth
	Username *string
	Email    *string
	Password *string
	Bio      *string
	Image    *string
}

func NewUpdateUserValidator(users UserStorage) func(ctx context.Context, req UpdateUserRequest) error {
	return func(ctx context.Context, req UpdateUserRequest) error {
		// Authorization has already run; the identity is present.
		userID, err := auth.GetUserIDFromContext(ctx)
		if err != nil {
			return err
		}

		errs := validation.New()

		if req.Username != nil {
			if *req.Username == "" {
				errs.Add("username", "can't be blank")
			} else {
				taken, err := users.UsernameTaken(ctx, *req.Username, userID)
				if err != nil {
					return err
				}
				if taken {
					errs.Add("username", "is already taken")
				}
			}
		}

		if req.Email != nil {
			fields := validation.Struct(struct {
				Email string `validate:"required,email"`
			}{Email: *req.Email})
			errs.Merge(fields)

			if len(fields) == 0 {
				taken, err := users.EmailTaken(ctx, *req.Email, userID)
				if err != nil {
					return err
				}
				if taken {
					errs.Add("email", "is already used")
				}
			}
		}

		if req.Password != nil && len(*req.Password) < 8 {
			errs.Add("password", "is too short (minimum is 8 characters)")
		}

		return errs.Err()
	}
}

type UpdateUserHandler struct {
	users  UserStorage
	issuer *auth.TokenIssuer
}

func NewUpdateUserHandler(users UserStorage, issuer *auth.TokenIssuer) *UpdateUserHandler {
	return &UpdateUserHandler{users: users, issuer: issuer}
}

func (h *UpdateUserHandler) Handle(ctx context.Context, req UpdateUserRequest) (UserResponse, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return UserResponse{}, err
	}

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		return UserResponse{}, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Image != nil {
		user.Image = *req.Image
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := h.users.Update(ctx, user); err != nil {
		return UserResponse{}, err
	}

	return mapUser(user, h.issuer)
}

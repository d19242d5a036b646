package auth

import (
	"context"
	"errors"
)

type contextKey string

const userIDKey = contextKey("userID")

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext extracts the authenticated user id. The error means
// the request is anonymous.
func GetUserIDFromContext(ctx context.Context) (uint, error) {
	val := ctx.Value(userIDKey)
	id, ok := val.(uint)
	if !ok {
		return 0, errors.New("user ID not found in context")
	}
	return id, nil
}

// IsAuthenticated reports whether the context carries an identity.
func IsAuthenticated(ctx context.Context) bool {
	_, err := GetUserIDFromContext(ctx)
	return err == nil
}

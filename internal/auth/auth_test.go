package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := WithUserID(context.Background(), 7)

		id, err := GetUserIDFromContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint(7), id)
		assert.True(t, IsAuthenticated(ctx))
	})

	t.Run("empty context is anonymous", func(t *testing.T) {
		ctx := context.Background()

		_, err := GetUserIDFromContext(ctx)
		assert.Error(t, err)
		assert.False(t, IsAuthenticated(ctx))
	})
}

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	t.Run("issue and verify", func(t *testing.T) {
		token, err := issuer.Issue(42, "jake")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		id, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, err := issuer.Issue(42, "jake")
		require.NoError(t, err)

		other := NewTokenIssuer("other-secret", time.Hour)
		_, err = other.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		shortLived := NewTokenIssuer("test-secret", -time.Minute)
		token, err := shortLived.Issue(42, "jake")
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token")
		assert.Error(t, err)
	})
}

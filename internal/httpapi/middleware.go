package httpapi

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VitaminP8/conduit/internal/auth"
)

// authMiddleware extracts the JWT from the Authorization header, verifies it
// and stores the user id in the request context. Absent or invalid tokens
// pass through anonymously; requests that need an identity fail later in the
// authorization behavior.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractTokenFromHeader(c.GetHeader("Authorization"))
		if tokenStr == "" {
			c.Next()
			return
		}

		userID, err := s.issuer.Verify(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		ctx := auth.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractTokenFromHeader accepts both the RealWorld "Token <jwt>" scheme and
// the common "Bearer <jwt>".
func extractTokenFromHeader(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) == 2 && (parts[0] == "Token" || parts[0] == "Bearer") {
		return parts[1]
	}
	return ""
}

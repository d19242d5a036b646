package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VitaminP8/conduit/internal/apperrors"
)

// writeError translates the error taxonomy to status codes. Validation
// failures carry their field messages in the RealWorld errors envelope.
func (s *Server) writeError(c *gin.Context, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"errors": gin.H{"body": []string{"unauthorized"}}})
	case apperrors.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"errors": gin.H{"body": []string{err.Error()}}})
	case apperrors.KindValidation:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": apperrors.FieldsOf(err)})
	case apperrors.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"errors": gin.H{"body": []string{err.Error()}}})
	case apperrors.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"body": []string{err.Error()}}})
	default:
		s.logger.Error().Err(err).Str("path", c.FullPath()).Msg("internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"errors": gin.H{"body": []string{"internal server error"}}})
	}
}

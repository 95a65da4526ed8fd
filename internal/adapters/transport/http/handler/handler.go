package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mindxandria/library-backend/internal/domain/errors"
)

func handleError(c *gin.Context, err error) {
	switch {
	case domainErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrAuthenticationFailed):
		c.JSON(http.StatusBadRequest, gin.H{"error": domainErrors.ErrAuthenticationFailed.Error()})
	case errors.Is(err, domainErrors.ErrTokenExpired),
		errors.Is(err, domainErrors.ErrInvalidSignature):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case domainErrors.IsAccessDenied(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case domainErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domainErrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mindxandria/library-backend/internal/adapters/transport/http/dto"
	"github.com/mindxandria/library-backend/internal/app/auth/service"
	domainErrors "github.com/mindxandria/library-backend/internal/domain/errors"
	"github.com/mindxandria/library-backend/internal/domain/model"
)

type AuthHandler struct {
	auth   service.Service
	logger *zap.Logger
}

func NewAuthHandler(auth service.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body dto.RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.Register(c.Request.Context(), body); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "registered"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), body)
	if err != nil {
		if domainErrors.IsStorage(err) {
			h.logger.Error("login failed", zap.Error(err))
		}
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse(pair))
}

// Refresh exchanges a refresh token for a new pair. On failure the response
// keeps the token-pair shape with a null access token, so clients always
// decode the same structure.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var body dto.RefreshDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.TokenResponseDTO{RefreshToken: err.Error()})
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), body)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domainErrors.ErrStorage) {
			status = http.StatusInternalServerError
			h.logger.Error("refresh failed", zap.Error(err))
		}
		c.JSON(status, dto.TokenResponseDTO{RefreshToken: refreshFailureMessage(err)})
		return
	}
	c.JSON(http.StatusOK, tokenResponse(pair))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var body dto.RefreshDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), body); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func tokenResponse(pair model.TokenPair) dto.TokenResponseDTO {
	return dto.TokenResponseDTO{
		AccessToken:  &pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}

func refreshFailureMessage(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrRefreshTokenExpired):
		return "refresh token expired, log in again"
	case errors.Is(err, domainErrors.ErrRefreshTokenNotFound):
		return "refresh token is not recognized"
	case domainErrors.IsInvalidArgument(err):
		return err.Error()
	default:
		return "could not refresh the session"
	}
}

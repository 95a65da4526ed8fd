package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindxandria/library-backend/internal/adapters/transport/http/middleware"
	"github.com/mindxandria/library-backend/internal/app/users"
)

type UserHandler struct {
	users users.Service
}

func NewUserHandler(users users.Service) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.users.ProfileByEmail(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.DeleteByEmail(c.Request.Context(), middleware.Subject(c)); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mindxandria/library-backend/internal/adapters/transport/http/dto"
	"github.com/mindxandria/library-backend/internal/adapters/transport/http/middleware"
	"github.com/mindxandria/library-backend/internal/app/books"
	"github.com/mindxandria/library-backend/internal/app/users"
)

type BookHandler struct {
	books books.Service
	users users.Service
}

func NewBookHandler(books books.Service, users users.Service) *BookHandler {
	return &BookHandler{books: books, users: users}
}

// callerID maps the verified email from the access token to the user's id.
// Book ownership is keyed by id, not email.
func (h *BookHandler) callerID(c *gin.Context) (string, bool) {
	user, err := h.users.ByEmail(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		handleError(c, err)
		return "", false
	}
	return user.ID, true
}

func (h *BookHandler) List(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	list, err := h.books.ListMine(c.Request.Context(), ownerID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BookHandler) Create(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	var body dto.BookRequestDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.books.Create(c.Request.Context(), ownerID, body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookHandler) Update(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	var body dto.BookUpdateRequestDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.books.Update(c.Request.Context(), ownerID, c.Param("id"), body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BookHandler) Delete(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	if err := h.books.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	list, total, err := h.books.Search(c.Request.Context(), c.Query("q"), page, size)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list, "total": total, "page": page})
}

func (h *BookHandler) GenreStats(c *gin.Context) {
	stats, err := h.books.GenreStats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

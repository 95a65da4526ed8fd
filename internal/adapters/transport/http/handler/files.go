package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindxandria/library-backend/internal/app/files"
)

type FileHandler struct {
	files *files.Service
}

func NewFileHandler(files *files.Service) *FileHandler {
	return &FileHandler{files: files}
}

func (h *FileHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	name, err := h.files.Store(fh.Filename, src)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"fileName": name})
}

func (h *FileHandler) Download(c *gin.Context) {
	f, contentType, err := h.files.Load(c.Param("name"))
	if err != nil {
		handleError(c, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		handleError(c, err)
		return
	}

	c.DataFromReader(http.StatusOK, info.Size(), contentType, f, nil)
}

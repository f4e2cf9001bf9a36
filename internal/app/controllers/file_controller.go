package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/middleware"
	"github.com/kaan/examportal/internal/pkg/filestorage"
)

// FileController serves stored documents from the storage root.
type FileController struct {
	storage *filestorage.LocalStorage
}

// NewFileController creates a new FileController
func NewFileController(storage *filestorage.LocalStorage) *FileController {
	return &FileController{storage: storage}
}

// ServeFile streams a stored document
// @Summary Download a stored file
// @Description Serves a file from the storage root by its stored name
// @Tags files
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} file "File contents"
// @Failure 400 {object} dto.APIResponse "Invalid filename"
// @Failure 404 {object} dto.APIResponse "File not found"
// @Router /files/{filename} [get]
func (c *FileController) ServeFile(ctx *gin.Context) {
	filename := ctx.Param("filename")
	if filename == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("filename is required"))
		return
	}

	absPath, err := c.storage.Resolve(filename)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Type", filestorage.ContentType(absPath))
	ctx.Header("Cache-Control", "public, max-age=31536000")
	ctx.File(absPath)
}

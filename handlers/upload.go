package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"kirana-admin-backend/cloudinary"
	"kirana-admin-backend/utils"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	Uploader cloudinary.Client
}

const uploadTimeout = 30 * time.Second

func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	if err := utils.ValidateImageUpload(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), uploadTimeout)
	defer cancel()

	result, err := h.Uploader.UploadImage(ctx, file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "Upload timed out"})
			return
		}
		var statusErr *cloudinary.StatusError
		if errors.As(err, &statusErr) {
			c.JSON(statusErr.StatusCode, gin.H{"error": statusErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"url":       result.URL,
		"public_id": result.PublicID,
	})
}

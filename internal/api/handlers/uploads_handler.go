package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/storage"
)

// maxScreenshotBytes caps a single staged screenshot.
const maxScreenshotBytes = 10 << 20

// UploadsHandler stages ticket screenshots and returns their URLs.
type UploadsHandler struct {
	uploader storage.Uploader
}

// NewUploadsHandler creates a new UploadsHandler.
func NewUploadsHandler(uploader storage.Uploader) *UploadsHandler {
	return &UploadsHandler{uploader: uploader}
}

// Upload handles POST /console/uploads with a multipart "file" part.
func (h *UploadsHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}
	if fileHeader.Size > maxScreenshotBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 10MB limit"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image uploads are accepted"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read the uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadScreenshot(c.Request.Context(), fileHeader.Filename, contentType, file)
	if err != nil {
		log.Printf("Screenshot upload failed: %v", err)
		respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

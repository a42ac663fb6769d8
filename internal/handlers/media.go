package handlers

import (
	"net/http"
	"strconv"

	"quill/internal/services"

	"github.com/gin-gonic/gin"
)

// Uploads above this size are rejected before touching the object store.
const maxUploadBytes = 10 << 20

type MediaHandler struct {
	mediaService *services.MediaService
}

func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	items, err := h.mediaService.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load media library")
		return
	}

	render(c, http.StatusOK, "admin_media.html", gin.H{
		"Title": "Media",
		"items": items,
	})
}

func (h *MediaHandler) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "No file in upload"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"status": "error", "message": "File too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to read upload: " + err.Error()})
		return
	}
	defer src.Close()

	altText := c.PostForm("alt_text")
	contentType := file.Header.Get("Content-Type")

	item, err := h.mediaService.Upload(c.Request.Context(), file.Filename, contentType, file.Size, src, altText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Upload failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "File uploaded.",
		"id":      item.ID,
		"url":     item.FileURL,
	})
}

func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid media ID"})
		return
	}

	if _, err := h.mediaService.UpdateAltText(c.Request.Context(), uint(id), c.PostForm("alt_text")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update media"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Media updated."})
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid media ID"})
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete media: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Media deleted."})
}

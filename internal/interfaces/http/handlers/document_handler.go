package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/GenApp-Engine/internal/infrastructure/storage/minio"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

const maxDocumentBytes = 32 << 20

// DocumentHandler exposes order-document upload and retrieval.
type DocumentHandler struct {
	store *minio.DocumentStore
}

// NewDocumentHandler constructs a DocumentHandler.
func NewDocumentHandler(store *minio.DocumentStore) *DocumentHandler {
	return &DocumentHandler{store: store}
}

// Upload handles POST /api/v1/cases/:reference/documents (multipart form,
// field "document").
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("document")
	if err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "multipart field \"document\" is required"))
		return
	}
	if file.Size > maxDocumentBytes {
		respondError(c, errors.New(errors.ErrCodeDocumentTooLarge, "document exceeds the upload limit"))
		return
	}

	body, err := file.Open()
	if err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "open uploaded document"))
		return
	}
	defer body.Close()

	key, err := h.store.Upload(c.Request.Context(), c.Param("reference"),
		file.Filename, file.Header.Get("Content-Type"), body, file.Size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key})
}

// Download handles GET /api/v1/documents/*key.
func (h *DocumentHandler) Download(c *gin.Context) {
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}

	body, err := h.store.Download(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, body)
}

// Presign handles GET /api/v1/documents-link/*key, returning a short-lived
// direct download URL.
func (h *DocumentHandler) Presign(c *gin.Context) {
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}

	link, err := h.store.PresignedURL(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": link})
}

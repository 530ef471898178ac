package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Pratul75/report360/internal/infrastructure/storage"
	"github.com/Pratul75/report360/internal/interfaces/http/dto"
)

// UploadHandler accepts multipart file uploads and hands them to the
// file store. Any authenticated user may upload; the resulting public
// path goes into the record that references it.
type UploadHandler struct {
	BaseHandler
	fileStore storage.FileStore
}

func NewUploadHandler(fileStore storage.FileStore) *UploadHandler {
	return &UploadHandler{fileStore: fileStore}
}

// RegisterRoutes mounts the upload routes
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/:category", h.Upload)
}

type uploadResponse struct {
	URL          string    `json:"url"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file field in multipart form")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer f.Close()

	stored, err := h.fileStore.Save(c.Request.Context(), c.Param("category"), fileHeader.Filename, f)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeTooLarge, "File exceeds the maximum upload size")
		case errors.Is(err, storage.ErrUnsupportedType):
			h.BadRequest(c, "Unsupported file type")
		case errors.Is(err, storage.ErrInvalidCategory):
			h.BadRequest(c, "Invalid upload category")
		default:
			h.HandleError(c, err)
		}
		return
	}

	h.Created(c, uploadResponse{
		URL:          stored.PublicPath,
		OriginalName: stored.OriginalName,
		Size:         stored.Size,
		UploadedAt:   stored.UploadedAt,
	})
}

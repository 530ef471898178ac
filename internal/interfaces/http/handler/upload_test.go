package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratul75/report360/internal/infrastructure/config"
	"github.com/Pratul75/report360/internal/infrastructure/storage"
)

func newUploadRouter(t *testing.T, maxFileSize int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalFileStore(config.UploadConfig{
		BaseDir:     t.TempDir(),
		MaxFileSize: maxFileSize,
		PublicPath:  "/uploads",
	})
	require.NoError(t, err)

	router := gin.New()
	group := router.Group("/api/v1")
	NewUploadHandler(store).RegisterRoutes(group)
	return router
}

func multipartBody(t *testing.T, fieldName, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadHandler_Upload(t *testing.T) {
	router := newUploadRouter(t, 1<<20)

	body, contentType := multipartBody(t, "file", "bill.jpg", "fake image bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/receipts", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			URL          string `json:"url"`
			OriginalName string `json:"original_name"`
			Size         int64  `json:"size"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Data.URL, "/uploads/receipts/"))
	assert.True(t, strings.HasSuffix(resp.Data.URL, ".jpg"))
	assert.Equal(t, "bill.jpg", resp.Data.OriginalName)
	assert.Equal(t, int64(len("fake image bytes")), resp.Data.Size)
}

func TestUploadHandler_Upload_MissingFile(t *testing.T) {
	router := newUploadRouter(t, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/receipts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadHandler_Upload_UnsupportedType(t *testing.T) {
	router := newUploadRouter(t, 1<<20)

	body, contentType := multipartBody(t, "file", "payload.exe", "MZ")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/receipts", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadHandler_Upload_InvalidCategory(t *testing.T) {
	router := newUploadRouter(t, 1<<20)

	body, contentType := multipartBody(t, "file", "bill.jpg", "fake image bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/Bad%20Category", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadHandler_Upload_TooLarge(t *testing.T) {
	router := newUploadRouter(t, 8)

	body, contentType := multipartBody(t, "file", "bill.jpg", "more than eight bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/receipts", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

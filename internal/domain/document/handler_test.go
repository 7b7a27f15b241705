package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"assovol/internal/database"
	"assovol/internal/storage"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *storage.Storage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Document{}))

	store, err := storage.New(t.TempDir(), "http://api.test")
	require.NoError(t, err)

	handler := NewHandler(NewService(db, store))

	router := gin.New()
	api := router.Group("/api")
	RegisterRoutes(api, api, handler)
	return router, db, store
}

func postDocument(t *testing.T, router *gin.Engine, fields map[string]string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileContent != nil {
		fw, err := w.CreateFormFile("file", "bilancio-2024.pdf")
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateDocument(t *testing.T) {
	router, _, store := setupRouter(t)

	content := bytes.Repeat([]byte("x"), 1024*1024) // 1 MiB
	resp := postDocument(t, router, map[string]string{
		"title":    "Bilancio 2024",
		"category": "Bilanci",
	}, content)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Contains(t, created.FileURL, "http://api.test/uploads/")
	assert.Equal(t, "1.00 MB", created.FileSize)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), ".pdf")
}

func TestCreateDocumentWithoutFile(t *testing.T) {
	router, db, store := setupRouter(t)

	resp := postDocument(t, router, map[string]string{
		"title":    "Bilancio 2024",
		"category": "Bilanci",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "No file uploaded")

	var count int64
	require.NoError(t, db.Model(&Document{}).Count(&count).Error)
	assert.Zero(t, count)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdateDocumentReplacesFile(t *testing.T) {
	router, _, store := setupRouter(t)

	resp := postDocument(t, router, map[string]string{
		"title":    "Bilancio 2024",
		"category": "Bilanci",
	}, []byte("old"))
	require.Equal(t, http.StatusCreated, resp.Code)
	var created Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "bilancio-2024-rev.pdf")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("y"), 512*1024))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/documents/%d", created.ID), &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated Document
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.NotEqual(t, created.FileURL, updated.FileURL)
	assert.Equal(t, "0.50 MB", updated.FileSize)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "old file must be removed once the record is updated")
}

func TestDeleteDocument(t *testing.T) {
	router, db, store := setupRouter(t)

	resp := postDocument(t, router, map[string]string{
		"title":    "Statuto",
		"category": "Statuto",
	}, []byte("pdf"))
	require.Equal(t, http.StatusCreated, resp.Code)
	var created Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/documents/%d", created.ID), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, db.Model(&Document{}).Count(&count).Error)
	assert.Zero(t, count)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

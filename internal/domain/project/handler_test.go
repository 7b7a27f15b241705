package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"assovol/internal/database"
	"assovol/internal/storage"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Project{}))

	store, err := storage.New(t.TempDir(), "http://api.test")
	require.NoError(t, err)

	handler := NewHandler(NewService(db, store))

	router := gin.New()
	api := router.Group("/api")
	RegisterRoutes(api, api, handler)
	return router, db
}

func postProject(t *testing.T, router *gin.Engine, fields map[string]string, withImage bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withImage {
		fw, err := w.CreateFormFile("image", "cover.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/projects", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func projectFields() map[string]string {
	return map[string]string{
		"title":       "Trasporto sanitario",
		"description": "Servizio di trasporto per persone fragili",
		"startDate":   "2024-02-01",
		"endDate":     "2024-12-31",
		"category":    "health",
	}
}

func TestCreateProject(t *testing.T) {
	router, _ := setupRouter(t)

	resp := postProject(t, router, projectFields(), true)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Trasporto sanitario", created.Title)
	assert.Equal(t, "health", created.Category)
	assert.Equal(t, 2024, created.StartDate.Year())
	assert.Contains(t, created.Image, "http://api.test/uploads/")
}

func TestCreateProjectInvalidDate(t *testing.T) {
	router, db := setupRouter(t)

	fields := projectFields()
	fields["startDate"] = "not-a-date"

	resp := postProject(t, router, fields, true)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid date")

	var count int64
	require.NoError(t, db.Model(&Project{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateProjectInvalidCategory(t *testing.T) {
	router, _ := setupRouter(t)

	fields := projectFields()
	fields["category"] = "sports"

	resp := postProject(t, router, fields, true)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Category must be one of: social, education, health, other")
}

func TestUpdateProjectDates(t *testing.T) {
	router, _ := setupRouter(t)

	resp := postProject(t, router, projectFields(), true)
	require.Equal(t, http.StatusCreated, resp.Code)
	var created Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("endDate", "2025-06-30"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/projects/%d", created.ID), &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated Project
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, "2025-06-30", updated.EndDate.Format("2006-01-02"))
	assert.True(t, updated.StartDate.Equal(created.StartDate), "start date must keep its stored value")
}

func TestDeleteProjectNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Project not found")
}

package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtsvc "assovol/internal/pkg/jwt"
)

func newService(t *testing.T) (*Service, *jwtsvc.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	j := jwtsvc.New("test-secret", time.Hour)
	return NewService("admin", string(hash), j), j
}

func TestLogin(t *testing.T) {
	svc, j := newService(t)

	token, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newService(t)

	token, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _ := newService(t)

	token, err := svc.Login("root", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLoginEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, _ := newService(t)

	router := gin.New()
	api := router.Group("/api")
	RegisterRoutes(api, NewHandler(svc))

	do := func(body map[string]string) *httptest.ResponseRecorder {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	resp := do(map[string]string{"username": "admin", "password": "s3cret"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var ok struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ok))
	assert.NotEmpty(t, ok.Token)

	resp = do(map[string]string{"username": "admin", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid credentials")

	resp = do(map[string]string{"username": "admin"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Password is required")
}

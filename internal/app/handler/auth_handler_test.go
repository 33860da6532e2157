package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"garage-backend/internal/app/config"
	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/dto"
	"garage-backend/internal/app/repository"
	"garage-backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubBlacklistWriter запоминает отозванные токены вместо похода в Redis
type stubBlacklistWriter struct {
	revoked map[string]time.Duration
}

func (s *stubBlacklistWriter) WriteJWTToBlacklist(_ context.Context, jwtStr string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = map[string]time.Duration{}
	}
	s.revoked[jwtStr] = ttl
	return nil
}

func setupAuthHandler(t *testing.T) (*AuthHandler, *stubBlacklistWriter, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "garage_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo, err := repository.NewWithDB(db)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("cashier"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.CreateUser(&ds.User{
		Username: "cashier",
		Password: string(hash),
		FullName: "Justin Bieber",
		Role:     role.Cashier,
	}))

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Token:         "test-secret",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}

	blacklist := &stubBlacklistWriter{}
	authHandler := NewAuthHandler(repo, blacklist, cfg)

	router := gin.New()
	router.POST("/auth/login", authHandler.LoginUser)
	router.POST("/auth/logout", authHandler.LogoutUser)
	router.GET("/auth/profile", func(ctx *gin.Context) {
		// userID ставит middleware авторизации, здесь подменяем его
		ctx.Set("userID", uint(1))
		authHandler.GetUserProfile(ctx)
	})

	return authHandler, blacklist, router
}

func login(t *testing.T, router *gin.Engine, username, password string) (*httptest.ResponseRecorder, dto.ResponseDto) {
	t.Helper()

	raw, err := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.ResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestLoginSuccess(t *testing.T) {
	_, _, router := setupAuthHandler(t)

	w, resp := login(t, router, "cashier", "cashier")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User is successfully logged in", resp.Message)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, result["token"])

	user, ok := result["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "cashier", user["username"])
	assert.Equal(t, "CASHIER", user["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	_, _, router := setupAuthHandler(t)

	w, _ := login(t, router, "cashier", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	_, _, router := setupAuthHandler(t)

	w, _ := login(t, router, "nobody", "nobody")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	_, blacklist, router := setupAuthHandler(t)

	_, resp := login(t, router, "cashier", "cashier")
	result := resp.Result.(map[string]interface{})
	token := result["token"].(string)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Токен ушёл в blacklist с остатком TTL
	ttl, ok := blacklist.revoked[token]
	require.True(t, ok)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestLogoutWithoutToken(t *testing.T) {
	_, _, router := setupAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserProfile(t *testing.T) {
	_, _, router := setupAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	result := resp.Result.(map[string]interface{})
	assert.Equal(t, "Justin Bieber", result["fullName"])
	assert.Equal(t, "CASHIER", result["role"])
}

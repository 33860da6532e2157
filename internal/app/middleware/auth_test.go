package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"garage-backend/internal/app/config"
	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// stubBlacklist имитирует Redis: токены из множества считаются отозванными
type stubBlacklist struct {
	revoked map[string]bool
}

func (s *stubBlacklist) CheckJWTInBlacklist(_ context.Context, jwtStr string) error {
	if s.revoked[jwtStr] {
		return nil
	}
	return errors.New("redis: nil")
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Token:         testSecret,
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}
}

func signToken(t *testing.T, userRole role.Role) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(time.Hour).Unix(),
			IssuedAt:  now.Unix(),
		},
		UserID: 1,
		Role:   userRole,
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func testRouter(blacklist TokenBlacklist) *gin.Engine {
	gin.SetMode(gin.TestMode)

	am := NewAuthMiddleware(blacklist, testConfig())
	router := gin.New()
	router.Use(am.WithPolicyCheck())

	handler := func(ctx *gin.Context) { ctx.Status(http.StatusOK) }
	router.GET("/ping", handler)
	router.POST("/receipts/generate/:licensePlate", handler)
	router.POST("/car/installPartsInCar/:licensePlate/:partId", handler)
	router.GET("/auth/profile", handler)
	return router
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPublicRouteSkipsAuth(t *testing.T) {
	router := testRouter(&stubBlacklist{})

	w := doRequest(router, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMissingTokenRejected(t *testing.T) {
	router := testRouter(&stubBlacklist{})

	w := doRequest(router, http.MethodPost, "/receipts/generate/81-PN-PK", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleAllowed(t *testing.T) {
	router := testRouter(&stubBlacklist{})

	w := doRequest(router, http.MethodPost, "/receipts/generate/81-PN-PK", signToken(t, role.Cashier))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleForbidden(t *testing.T) {
	router := testRouter(&stubBlacklist{})

	// Кассиру нельзя ставить детали в машину
	w := doRequest(router, http.MethodPost, "/car/installPartsInCar/81-PN-PK/3", signToken(t, role.Cashier))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminAllowedEverywhere(t *testing.T) {
	router := testRouter(&stubBlacklist{})
	token := signToken(t, role.Admin)

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/receipts/generate/81-PN-PK", token).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/car/installPartsInCar/81-PN-PK/3", token).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/auth/profile", token).Code)
}

func TestBlacklistedTokenRejected(t *testing.T) {
	token := signToken(t, role.Admin)
	router := testRouter(&stubBlacklist{revoked: map[string]bool{token: true}})

	w := doRequest(router, http.MethodGet, "/auth/profile", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnknownRoleRejected(t *testing.T) {
	router := testRouter(&stubBlacklist{})

	// Корректно подписанный токен с ролью вне справочника не проходит
	w := doRequest(router, http.MethodGet, "/auth/profile", signToken(t, role.Role("SUPERVISOR")))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGarbageTokenRejected(t *testing.T) {
	router := testRouter(&stubBlacklist{})

	w := doRequest(router, http.MethodGet, "/auth/profile", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"garage-backend/internal/app/config"
	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/dto"
	"garage-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "garage-backend"

// TokenBlacklistWriter кладёт отозванный JWT в blacklist до истечения его TTL
type TokenBlacklistWriter interface {
	WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error
}

type AuthHandler struct {
	Repository *repository.Repository
	Blacklist  TokenBlacklistWriter
	Config     *config.Config
}

func NewAuthHandler(r *repository.Repository, blacklist TokenBlacklistWriter, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository: r,
		Blacklist:  blacklist,
		Config:     config,
	}
}

// LoginUser аутентификация сотрудника
// @Summary Вход в систему
// @Description Аутентификация сотрудника с возвратом JWT токена
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.ResponseDto
// @Failure 400 {object} dto.ResponseDto
// @Failure 401 {object} dto.ResponseDto
// @Router /auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByUsername(request.Username)
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid username or password"))
		return
	}

	// Пароли хранятся как bcrypt-хеши
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid username or password"))
		return
	}

	// Создание JWT токена, роль зашита в claims
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
		},
		UserID: user.ID,
		Role:   user.Role,
	})

	accessToken, err := token.SignedString([]byte(h.Config.JWT.Token))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	response := dto.LoginResponse{
		Token: accessToken,
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Role:     string(user.Role),
		},
	}

	ctx.JSON(http.StatusOK, dto.ResponseDto{
		Result:     response,
		Message:    "User is successfully logged in",
		StatusCode: http.StatusOK,
	})
}

// LogoutUser выход сотрудника из системы
// @Summary Выход из системы
// @Description Завершение сеанса с добавлением токена в blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResponseDto
// @Failure 401 {object} dto.ResponseDto
// @Failure 500 {object} dto.ResponseDto
// @Router /auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("authorization header missing"))
		return
	}

	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	// Парсинг токена, чтобы узнать остаток его TTL
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	// Истёкший токен уже не нуждается в blacklist
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		if err := h.Blacklist.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.ResponseDto{
		Result:     nil,
		Message:    "User is successfully logged out",
		StatusCode: http.StatusOK,
	})
}

// GetUserProfile профиль текущего сотрудника
// @Summary Получение профиля
// @Description Возвращает информацию о текущем сотруднике
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResponseDto
// @Failure 401 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	userID, exists := ctx.Get("userID")
	if !exists {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("user is not authenticated"))
		return
	}

	user, err := h.Repository.GetUserByID(userID.(uint))
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("there is no user against this id"))
		return
	}

	response := dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     string(user.Role),
	}

	ctx.JSON(http.StatusOK, dto.ResponseDto{
		Result:     response,
		Message:    "This is the profile of the current user",
		StatusCode: http.StatusOK,
	})
}

func (h *AuthHandler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, dto.ResponseDto{
		Result:     nil,
		Message:    err.Error(),
		StatusCode: errorStatusCode,
	})
}

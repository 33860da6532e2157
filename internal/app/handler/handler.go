package handler

import (
	"net/http"

	"garage-backend/internal/app/config"
	"garage-backend/internal/app/dto"
	"garage-backend/internal/app/repository"
	"garage-backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler содержит обработчики REST API гаража
type Handler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	Config      *config.Config
	AuthHandler *AuthHandler
}

func NewHandler(r *repository.Repository, minioClient *storage.MinIOClient, cfg *config.Config, authHandler *AuthHandler) *Handler {
	return &Handler{
		Repository:  r,
		MinIOClient: minioClient,
		Config:      cfg,
		AuthHandler: authHandler,
	}
}

// ============ Вспомогательные функции ============

// respond отдаёт единый конверт, HTTP-статус дублирует statusCode конверта
func (h *Handler) respond(ctx *gin.Context, resp dto.ResponseDto) {
	ctx.JSON(resp.StatusCode, resp)
}

func (h *Handler) ok(ctx *gin.Context, result interface{}, message string) {
	h.respond(ctx, dto.ResponseDto{
		Result:     result,
		Message:    message,
		StatusCode: http.StatusOK,
	})
}

// notFound - сигнал "не найдено"; result может нести пустой список,
// так ведёт себя исходный контракт list-эндпоинтов
func (h *Handler) notFound(ctx *gin.Context, result interface{}, message string) {
	h.respond(ctx, dto.ResponseDto{
		Result:     result,
		Message:    message,
		StatusCode: http.StatusNotFound,
	})
}

// internalError - любой сбой хранилища, сообщение отдаётся как есть
func (h *Handler) internalError(ctx *gin.Context, err error) {
	logrus.Error(err.Error())
	h.respond(ctx, dto.ResponseDto{
		Result:     nil,
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
	})
}

func (h *Handler) badRequest(ctx *gin.Context, err error) {
	h.respond(ctx, dto.ResponseDto{
		Result:     nil,
		Message:    err.Error(),
		StatusCode: http.StatusBadRequest,
	})
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}

package handler

import (
	"errors"
	"io"
	"strconv"

	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/dto"
	"garage-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ЗАПЧАСТИ ============

// AddPart добавляет запчасть на склад
// @Summary Добавление запчасти
// @Tags Parts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddPartRequest true "Данные запчасти"
// @Success 200 {object} dto.ResponseDto
// @Failure 400 {object} dto.ResponseDto
// @Router /parts/add [post]
func (h *Handler) AddPart(ctx *gin.Context) {
	var request dto.AddPartRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}

	part := ds.Part{
		Name:  request.Name,
		Price: request.Price,
		Stock: request.Stock,
	}
	if err := h.Repository.CreatePart(&part); err != nil {
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, part, "Part is successfully added in the database")
}

// ListParts возвращает весь склад запчастей
// @Summary Список запчастей
// @Tags Parts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /parts/list [get]
func (h *Handler) ListParts(ctx *gin.Context) {
	parts, err := h.Repository.ListParts()
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	if len(parts) == 0 {
		h.notFound(ctx, parts, "There is no part registered yet in the database")
		return
	}

	// Для карточек с изображением подставляем временные ссылки MinIO
	if h.MinIOClient != nil {
		for i := range parts {
			if parts[i].ImageURL == nil {
				continue
			}
			url, err := h.MinIOClient.GetImageURL(*parts[i].ImageURL)
			if err != nil {
				continue
			}
			parts[i].ImageURL = &url
		}
	}

	h.ok(ctx, parts, "This is the list of parts that are in the database")
}

// UpdatePart - полная замена полей запчасти
// @Summary Обновление запчасти
// @Tags Parts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdatePartRequest true "Данные запчасти"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /parts/update [put]
func (h *Handler) UpdatePart(ctx *gin.Context) {
	var request dto.UpdatePartRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}

	part, err := h.Repository.UpdatePart(&ds.Part{
		ID:    request.ID,
		Name:  request.Name,
		Price: request.Price,
		Stock: request.Stock,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPartNotFound) {
			h.notFound(ctx, nil, "There is no part in the database against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, part, "Part is successfully updated in the database.")
}

// DeletePart удаляет запчасть со склада
// @Summary Удаление запчасти
// @Tags Parts
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID запчасти"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /parts/delete/{id} [delete]
func (h *Handler) DeletePart(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	if err := h.Repository.DeletePart(uint(id)); err != nil {
		if errors.Is(err, repository.ErrPartNotFound) {
			h.notFound(ctx, nil, "There is no part in the database against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, nil, "Part is successfully deleted from the database.")
}

// UploadPartImage загружает изображение запчасти в MinIO
// @Summary Изображение запчасти
// @Tags Parts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID запчасти"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Failure 500 {object} dto.ResponseDto
// @Router /parts/{id}/image [post]
func (h *Handler) UploadPartImage(ctx *gin.Context) {
	// Сервер живёт и без MinIO, но тогда загрузка изображений недоступна
	if h.MinIOClient == nil {
		h.internalError(ctx, errors.New("part image storage is not available"))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	existing, err := h.Repository.GetPartByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrPartNotFound) {
			h.notFound(ctx, nil, "There is no part in the database against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.internalError(ctx, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	objectName, err := h.MinIOClient.UploadPartImage(data, fileHeader.Filename)
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	part, err := h.Repository.SetPartImage(uint(id), objectName)
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	// Прежний объект больше ни на что не ссылается
	if existing.ImageURL != nil {
		if err := h.MinIOClient.DeletePartImage(*existing.ImageURL); err != nil {
			logrus.Warnf("failed to delete previous part image %s: %v", *existing.ImageURL, err)
		}
	}

	h.ok(ctx, part, "Image for this part has been uploaded")
}

package handler

import (
	"errors"
	"strconv"

	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/dto"
	"garage-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН РЕМОНТНЫЕ ОПЕРАЦИИ ============

// AddRepairOperation добавляет операцию в каталог
// @Summary Добавление ремонтной операции
// @Tags RepairOperations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddRepairOperationRequest true "Данные операции"
// @Success 200 {object} dto.ResponseDto
// @Failure 400 {object} dto.ResponseDto
// @Router /repairOperations/add [post]
func (h *Handler) AddRepairOperation(ctx *gin.Context) {
	var request dto.AddRepairOperationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}

	operation := ds.RepairOperation{
		RepairAction: request.RepairAction,
		Price:        request.Price,
	}
	if err := h.Repository.CreateRepairOperation(&operation); err != nil {
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, operation, "Repairing operation is successfully added in the database")
}

// ListRepairOperations возвращает каталог операций
// @Summary Список ремонтных операций
// @Tags RepairOperations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /repairOperations/list [get]
func (h *Handler) ListRepairOperations(ctx *gin.Context) {
	operations, err := h.Repository.ListRepairOperations()
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	if len(operations) == 0 {
		h.notFound(ctx, operations, "There is no repairing operation registered yet in the database")
		return
	}
	h.ok(ctx, operations, "This is the list of repairing operations that are in the database")
}

// UpdateRepairOperation - полная замена полей операции
// @Summary Обновление ремонтной операции
// @Tags RepairOperations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateRepairOperationRequest true "Данные операции"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /repairOperations/update [put]
func (h *Handler) UpdateRepairOperation(ctx *gin.Context) {
	var request dto.UpdateRepairOperationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}

	operation, err := h.Repository.UpdateRepairOperation(&ds.RepairOperation{
		ID:           request.ID,
		RepairAction: request.RepairAction,
		Price:        request.Price,
	})
	if err != nil {
		if errors.Is(err, repository.ErrOperationNotFound) {
			h.notFound(ctx, nil, "There is no repairing operation against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, operation, "Repairing operation is successfully updated in the database.")
}

// DeleteRepairOperation удаляет операцию из каталога
// @Summary Удаление ремонтной операции
// @Tags RepairOperations
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID операции"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /repairOperations/delete/{id} [delete]
func (h *Handler) DeleteRepairOperation(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	if err := h.Repository.DeleteRepairOperation(uint(id)); err != nil {
		if errors.Is(err, repository.ErrOperationNotFound) {
			h.notFound(ctx, nil, "There is no repairing operation against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, nil, "Repairing operation is successfully deleted from the database.")
}

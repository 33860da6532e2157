package handler

import (
	"errors"
	"strconv"

	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/dto"
	"garage-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН КВИТАНЦИИ ============

// GenerateReceipt формирует квитанцию по текущему состоянию машины
// @Summary Генерация квитанции
// @Description Снимает копии списков деталей и операций машины и считает
// @Description total = inspection + sum(parts) + sum(operations).
// @Description Повторный вызов создаёт вторую квитанцию - это ожидаемое поведение.
// @Tags Receipts
// @Produce json
// @Security BearerAuth
// @Param licensePlate path string true "Госномер"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Failure 500 {object} dto.ResponseDto
// @Router /receipts/generate/{licensePlate} [post]
func (h *Handler) GenerateReceipt(ctx *gin.Context) {
	licensePlate := ctx.Param("licensePlate")

	receipt, err := h.Repository.GenerateReceipt(licensePlate, h.Config.InspectionAmount)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			h.notFound(ctx, nil, "There is no car against this license plate")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, receipt, "Receipt is successfully generated for this car")
}

// ListReceipts возвращает все квитанции
// @Summary Список квитанций
// @Tags Receipts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /receipts/list [get]
func (h *Handler) ListReceipts(ctx *gin.Context) {
	receipts, err := h.Repository.ListReceipts()
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	if len(receipts) == 0 {
		h.notFound(ctx, receipts, "There is no receipt generated yet in the database")
		return
	}
	h.ok(ctx, receipts, "This is the list of receipts that are in the database")
}

// GetReceiptsByLicensePlate фильтрует квитанции по госномеру
// @Summary Квитанции по госномеру
// @Description Существование машины не проверяется, фильтр идёт по
// @Description денормализованному полю квитанции
// @Tags Receipts
// @Produce json
// @Security BearerAuth
// @Param licensePlate path string true "Госномер"
// @Success 200 {object} dto.ResponseDto
// @Router /receipts/getByLicensePlate/{licensePlate} [get]
func (h *Handler) GetReceiptsByLicensePlate(ctx *gin.Context) {
	licensePlate := ctx.Param("licensePlate")

	receipts, err := h.Repository.GetReceiptsByLicensePlate(licensePlate)
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, receipts, "These are the receipts against this license plate")
}

// UpdateReceipt - полная замена квитанции
// @Summary Обновление квитанции
// @Description Полная замена без пересчёта сумм: что прислали, то и сохранится
// @Tags Receipts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateReceiptRequest true "Квитанция целиком"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /receipts/update [put]
func (h *Handler) UpdateReceipt(ctx *gin.Context) {
	var request dto.UpdateReceiptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}

	receipt := ds.Receipt{
		ID:                     request.ID,
		CarLicensePlate:        request.CarLicensePlate,
		Status:                 request.Status,
		InspectionAmount:       request.InspectionAmount,
		PartsAmount:            request.PartsAmount,
		RepairOperationsAmount: request.RepairOperationsAmount,
		TotalAmountOfRepairing: request.TotalAmountOfRepairing,
	}
	for _, p := range request.PartsList {
		receipt.PartsList = append(receipt.PartsList, ds.ReceiptPart{Name: p.Name, Price: p.Price})
	}
	for _, op := range request.RepairOperationsList {
		receipt.RepairOperationsList = append(receipt.RepairOperationsList, ds.ReceiptOperation{RepairAction: op.RepairAction, Price: op.Price})
	}

	updated, err := h.Repository.UpdateReceipt(&receipt)
	if err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			h.notFound(ctx, nil, "There is no existing receipt against this id that you want to update")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, updated, "Receipt is successfully updated in the database.")
}

// ChangeReceiptStatusToPaid переводит квитанцию pending -> Paid
// @Summary Отметка об оплате
// @Tags Receipts
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID квитанции"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /receipts/changeStatusToPaid/{id} [put]
func (h *Handler) ChangeReceiptStatusToPaid(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	receipt, err := h.Repository.ChangeReceiptStatusToPaid(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			h.notFound(ctx, nil, "There is no receipt against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, receipt, "Receipt status is successfully changed to Paid")
}

// DeleteReceipt удаляет квитанцию
// @Summary Удаление квитанции
// @Tags Receipts
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID квитанции"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /receipts/delete/{id} [delete]
func (h *Handler) DeleteReceipt(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	if err := h.Repository.DeleteReceipt(uint(id)); err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			h.notFound(ctx, nil, "There is no receipt against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, nil, "Receipt is successfully deleted from the database.")
}

package handler

import (
	"errors"
	"strconv"

	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/dto"
	"garage-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН КЛИЕНТЫ ============

// AddCustomer регистрирует клиента
// @Summary Добавление клиента
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddCustomerRequest true "Данные клиента"
// @Success 200 {object} dto.ResponseDto
// @Failure 400 {object} dto.ResponseDto
// @Router /customer/add [post]
func (h *Handler) AddCustomer(ctx *gin.Context) {
	var request dto.AddCustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}

	customer := ds.Customer{
		Surname:     request.Surname,
		Address:     request.Address,
		PhoneNumber: request.PhoneNumber,
	}
	if err := h.Repository.CreateCustomer(&customer); err != nil {
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, customer, "Customer is successfully added in the database")
}

// ListCustomers возвращает всех клиентов
// @Summary Список клиентов
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /customer/list [get]
func (h *Handler) ListCustomers(ctx *gin.Context) {
	customers, err := h.Repository.ListCustomers()
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	if len(customers) == 0 {
		h.notFound(ctx, customers, "There is no customer registered yet in the database")
		return
	}
	h.ok(ctx, customers, "This is the list of customers that are in the database")
}

// UpdateCustomer - полная замена полей клиента
// @Summary Обновление клиента
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateCustomerRequest true "Данные клиента"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /customer/update [put]
func (h *Handler) UpdateCustomer(ctx *gin.Context) {
	var request dto.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}

	customer, err := h.Repository.UpdateCustomer(&ds.Customer{
		ID:          request.ID,
		Surname:     request.Surname,
		Address:     request.Address,
		PhoneNumber: request.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			h.notFound(ctx, nil, "There is no customer against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, customer, "Customer is successfully updated in the database.")
}

// DeleteCustomer удаляет клиента, его машины остаются без владельца
// @Summary Удаление клиента
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID клиента"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /customer/delete/{id} [delete]
func (h *Handler) DeleteCustomer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	if err := h.Repository.DeleteCustomer(uint(id)); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			h.notFound(ctx, nil, "There is no customer against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, nil, "Customer is successfully deleted from the database.")
}

package handler

import (
	"errors"
	"strconv"

	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/dto"
	"garage-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН ЗАПИСИ НА ПРИЁМ ============

// AddAppointment создаёт запись на приём
// @Summary Добавление записи на приём
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddAppointmentRequest true "Данные записи"
// @Success 200 {object} dto.ResponseDto
// @Failure 400 {object} dto.ResponseDto
// @Router /appointments/add [post]
func (h *Handler) AddAppointment(ctx *gin.Context) {
	var request dto.AddAppointmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}

	appointment := ds.Appointment{
		CarLicensePlate: request.CarLicensePlate,
		CustomerName:    request.CustomerName,
		Date:            request.Date,
		Description:     request.Description,
	}
	if err := h.Repository.CreateAppointment(&appointment); err != nil {
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, appointment, "Appointment is successfully added in the database")
}

// ListAppointments возвращает все записи в порядке даты приёма
// @Summary Список записей на приём
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /appointments/list [get]
func (h *Handler) ListAppointments(ctx *gin.Context) {
	appointments, err := h.Repository.ListAppointments()
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	if len(appointments) == 0 {
		h.notFound(ctx, appointments, "There is no appointment scheduled yet in the database")
		return
	}
	h.ok(ctx, appointments, "This is the list of appointments that are in the database")
}

// UpdateAppointment - частичное обновление записи
// @Summary Обновление записи на приём
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAppointmentRequest true "Изменяемые поля"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /appointments/update [put]
func (h *Handler) UpdateAppointment(ctx *gin.Context) {
	var request dto.UpdateAppointmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}

	appointment, err := h.Repository.GetAppointmentByID(request.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			h.notFound(ctx, nil, "There is no appointment against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	if request.CarLicensePlate != nil {
		appointment.CarLicensePlate = *request.CarLicensePlate
	}
	if request.CustomerName != nil {
		appointment.CustomerName = *request.CustomerName
	}
	if request.Date != nil {
		appointment.Date = *request.Date
	}
	if request.Description != nil {
		appointment.Description = *request.Description
	}
	if request.Status != nil {
		appointment.Status = *request.Status
	}

	if err := h.Repository.SaveAppointment(appointment); err != nil {
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, appointment, "Appointment is successfully updated in the database.")
}

// DeleteAppointment удаляет запись на приём
// @Summary Удаление записи на приём
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID записи"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /appointments/delete/{id} [delete]
func (h *Handler) DeleteAppointment(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	if err := h.Repository.DeleteAppointment(uint(id)); err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			h.notFound(ctx, nil, "There is no appointment against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, nil, "Appointment is successfully deleted from the database.")
}

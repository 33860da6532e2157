package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/dto"
	"garage-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН АВТОМОБИЛИ ============

// AddCar регистрирует машину вместе с владельцем
// @Summary Добавление автомобиля
// @Description Создаёт автомобиль и каскадно его владельца
// @Tags Cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddCarRequest true "Данные автомобиля"
// @Success 200 {object} dto.ResponseDto
// @Failure 400 {object} dto.ResponseDto
// @Failure 500 {object} dto.ResponseDto
// @Router /car/add [post]
func (h *Handler) AddCar(ctx *gin.Context) {
	var request dto.AddCarRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}

	car := ds.Car{
		LicensePlate: request.LicensePlate,
		RepairStatus: request.RepairStatus,
		Customer: &ds.Customer{
			Surname:     request.Customer.Surname,
			Address:     request.Customer.Address,
			PhoneNumber: request.Customer.PhoneNumber,
		},
	}

	if err := h.Repository.AddCar(&car); err != nil {
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, car, "Car is successfully added in the database")
}

// ListCars возвращает все машины
// @Summary Список автомобилей
// @Description Пустой список отдаётся со статусом 404 - так договорились с фронтом
// @Tags Cars
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /car/list [get]
func (h *Handler) ListCars(ctx *gin.Context) {
	cars, err := h.Repository.ListCars()
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	if len(cars) == 0 {
		h.notFound(ctx, cars, "There is no car registered yet in the database")
		return
	}
	h.ok(ctx, cars, "This is the list of cars that are in the database")
}

// ListRepairedCars возвращает машины со статусом "repaired"
// @Summary Список отремонтированных автомобилей
// @Tags Cars
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /car/list/repairedCars [get]
func (h *Handler) ListRepairedCars(ctx *gin.Context) {
	cars, err := h.Repository.ListCarsByRepairStatus(ds.RepairStatusRepaired)
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	if len(cars) == 0 {
		h.notFound(ctx, cars, "There is no car repaired yet in the database")
		return
	}
	h.ok(ctx, cars, "This is the list of repaired cars that are in the database")
}

// ListUnRepairedCars возвращает машины в ремонте
// @Summary Список автомобилей в ремонте
// @Tags Cars
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /car/list/unRepairedCars [get]
func (h *Handler) ListUnRepairedCars(ctx *gin.Context) {
	cars, err := h.Repository.ListCarsByRepairStatus(ds.RepairStatusUnderway)
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	if len(cars) == 0 {
		h.notFound(ctx, cars, "There is no car that requires repairing yet in the database")
		return
	}
	h.ok(ctx, cars, "This is the list of un repaired cars that are in the database")
}

// UpdateCar - полная замена полей машины
// @Summary Обновление автомобиля
// @Tags Cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateCarRequest true "Данные автомобиля"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /car/update [put]
func (h *Handler) UpdateCar(ctx *gin.Context) {
	var request dto.UpdateCarRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}

	car, err := h.Repository.UpdateCar(&ds.Car{
		ID:           request.ID,
		LicensePlate: request.LicensePlate,
		RepairStatus: request.RepairStatus,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			h.notFound(ctx, nil, "There is no existing car against this id that you want to update")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, car, "Car is successfully updated in the database.")
}

// DeleteCar удаляет машину со всеми её связями
// @Summary Удаление автомобиля
// @Tags Cars
// @Produce json
// @Security BearerAuth
// @Param licensePlate path string true "Госномер"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /car/delete/{licensePlate} [delete]
func (h *Handler) DeleteCar(ctx *gin.Context) {
	licensePlate := ctx.Param("licensePlate")

	if err := h.Repository.DeleteCar(licensePlate); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			h.notFound(ctx, nil, "There is no car against this id")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, nil, "Car is successfully deleted from the database.")
}

// ChangeStatusToRepaired отмечает машину отремонтированной
// @Summary Смена статуса на "repaired"
// @Tags Cars
// @Produce json
// @Security BearerAuth
// @Param licensePlate path string true "Госномер"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /car/changeStatusToRepaired/{licensePlate} [put]
func (h *Handler) ChangeStatusToRepaired(ctx *gin.Context) {
	licensePlate := ctx.Param("licensePlate")

	car, err := h.Repository.ChangeStatusToRepaired(licensePlate)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			h.notFound(ctx, nil, "There is no car against this license plate")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, car, "Car is successfully added in the database")
}

// GetCustomerByCarLicensePlate возвращает владельца машины
// @Summary Владелец по госномеру
// @Tags Cars
// @Produce json
// @Security BearerAuth
// @Param licensePlate path string true "Госномер"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Router /car/getCustomer/{licensePlate} [get]
func (h *Handler) GetCustomerByCarLicensePlate(ctx *gin.Context) {
	licensePlate := ctx.Param("licensePlate")

	customer, err := h.Repository.GetCustomerByCarLicensePlate(licensePlate)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			h.notFound(ctx, nil, "There is no car against this license plate")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, customer, "This is the owner of this car")
}

// InstallPartsInCar устанавливает деталь со склада в машину
// @Summary Установка запчасти в автомобиль
// @Description Списывает одну единицу со склада и добавляет деталь в машину.
// @Description Несуществующий id детали и нулевой остаток дают один ответ 404.
// @Tags Cars
// @Produce json
// @Security BearerAuth
// @Param licensePlate path string true "Госномер"
// @Param partId path int true "ID запчасти"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Failure 500 {object} dto.ResponseDto
// @Router /car/installPartsInCar/{licensePlate}/{partId} [post]
func (h *Handler) InstallPartsInCar(ctx *gin.Context) {
	licensePlate := ctx.Param("licensePlate")
	partID, err := strconv.ParseUint(ctx.Param("partId"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	partsList, err := h.Repository.InstallPart(licensePlate, uint(partID))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCarNotFound):
			h.notFound(ctx, nil, "There is no car against this license plate")
		case errors.Is(err, repository.ErrPartNotFound):
			h.notFound(ctx, nil, "There is no part in the database against this id")
		default:
			h.internalError(ctx, err)
		}
		return
	}

	h.ok(ctx, partsList, "The part is successfully installed in the car !!")
}

// AddRepairingActionsInCar привязывает ремонтную операцию к машине
// @Summary Добавление ремонтной операции автомобилю
// @Tags Cars
// @Produce json
// @Security BearerAuth
// @Param licensePlate path string true "Госномер"
// @Param operationId path int true "ID операции"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Failure 500 {object} dto.ResponseDto
// @Router /car/addRepairingActionsInCar/{licensePlate}/{operationId} [post]
func (h *Handler) AddRepairingActionsInCar(ctx *gin.Context) {
	licensePlate := ctx.Param("licensePlate")
	operationID, err := strconv.ParseUint(ctx.Param("operationId"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	operationsList, err := h.Repository.AttachOperation(licensePlate, uint(operationID))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCarNotFound):
			h.notFound(ctx, nil, "There is no car against this license plate")
		case errors.Is(err, repository.ErrOperationNotFound):
			h.notFound(ctx, nil, "There is no repairing operation against this id")
		default:
			h.internalError(ctx, err)
		}
		return
	}

	h.ok(ctx, operationsList, "The repairing action is added in the car repairing-list")
}

// UploadCarDocument принимает multipart-файл и сохраняет его как blob
// @Summary Загрузка документа автомобиля
// @Tags Cars
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param licensePlate path string true "Госномер"
// @Param document formData file true "Файл документа"
// @Success 200 {object} dto.ResponseDto
// @Failure 404 {object} dto.ResponseDto
// @Failure 500 {object} dto.ResponseDto
// @Router /car/uploadDocument/{licensePlate} [post]
func (h *Handler) UploadCarDocument(ctx *gin.Context) {
	licensePlate := ctx.Param("licensePlate")

	fileHeader, err := ctx.FormFile("document")
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

	documentName := fmt.Sprintf("car_document-%s-%s", licensePlate, filepath.Base(fileHeader.Filename))
	car, err := h.Repository.SaveCarDocument(licensePlate, documentName, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			h.notFound(ctx, nil, "There is no car against this license plate in the database")
			return
		}
		h.internalError(ctx, err)
		return
	}

	h.ok(ctx, car, "Document for this car has been added in the database")
}

// GetCarDocument отдаёт документ как вложение. Единственное место, где
// вместо конверта уходит сырой файл, а любая ошибка превращается в 500.
// @Summary Скачивание документа автомобиля
// @Tags Cars
// @Produce octet-stream
// @Security BearerAuth
// @Param licensePlate path string true "Госномер"
// @Success 200 {file} binary
// @Failure 500 {object} dto.ResponseDto
// @Router /car/getDocuments/{licensePlate} [get]
func (h *Handler) GetCarDocument(ctx *gin.Context) {
	licensePlate := ctx.Param("licensePlate")

	doc, err := h.Repository.GetCarDocument(licensePlate)
	if err != nil {
		logrus.Error(err.Error())
		h.respond(ctx, dto.ResponseDto{
			Result:     nil,
			Message:    "Some error occurred",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.DocumentName))
	ctx.Data(http.StatusOK, "application/octet-stream", doc.Document)
}

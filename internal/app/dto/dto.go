package dto

import "time"

// ============ Единый конверт ответа ============

// ResponseDto - единая форма ответа всех операций:
// result может быть nil, statusCode дублируется в HTTP-статусе
type ResponseDto struct {
	Result     interface{} `json:"result"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
}

// ============ Автомобили ============

type AddCarRequest struct {
	LicensePlate string             `json:"licensePlate" binding:"required"`
	RepairStatus string             `json:"repairStatus" binding:"omitempty,oneof=pending 'Under Repairing' repaired"`
	Customer     AddCustomerRequest `json:"customer" binding:"required"`
}

type UpdateCarRequest struct {
	ID           uint   `json:"id" binding:"required"`
	LicensePlate string `json:"licensePlate" binding:"required"`
	RepairStatus string `json:"repairStatus" binding:"required,oneof=pending 'Under Repairing' repaired"`
}

// ============ Клиенты ============

type AddCustomerRequest struct {
	Surname     string `json:"surname" binding:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

type UpdateCustomerRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Surname     string `json:"surname" binding:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

// ============ Запчасти ============

type AddPartRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Stock int     `json:"stock" binding:"gte=0"`
}

type UpdatePartRequest struct {
	ID    uint    `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Stock int     `json:"stock" binding:"gte=0"`
}

// ============ Ремонтные операции ============

type AddRepairOperationRequest struct {
	RepairAction string  `json:"repairAction" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
}

type UpdateRepairOperationRequest struct {
	ID           uint    `json:"id" binding:"required"`
	RepairAction string  `json:"repairAction" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
}

// ============ Квитанции ============

// UpdateReceiptRequest - полная замена квитанции (не частичный patch)
type UpdateReceiptRequest struct {
	ID                     uint                   `json:"id" binding:"required"`
	CarLicensePlate        string                 `json:"carLicensePlate" binding:"required"`
	Status                 string                 `json:"status" binding:"required,oneof=pending Paid"`
	InspectionAmount       float64                `json:"inspectionAmount"`
	PartsAmount            float64                `json:"partsAmount"`
	RepairOperationsAmount float64                `json:"repairOperationsAmount"`
	TotalAmountOfRepairing float64                `json:"totalAmountOfRepairing"`
	PartsList              []ReceiptPartItem      `json:"partsList"`
	RepairOperationsList   []ReceiptOperationItem `json:"repairOperationsList"`
}

type ReceiptPartItem struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

type ReceiptOperationItem struct {
	RepairAction string  `json:"repairAction" binding:"required"`
	Price        float64 `json:"price"`
}

// ============ Записи на приём ============

type AddAppointmentRequest struct {
	CarLicensePlate string    `json:"carLicensePlate"`
	CustomerName    string    `json:"customerName" binding:"required"`
	Date            time.Time `json:"date" binding:"required"`
	Description     string    `json:"description"`
}

type UpdateAppointmentRequest struct {
	ID              uint       `json:"id" binding:"required"`
	CarLicensePlate *string    `json:"carLicensePlate"`
	CustomerName    *string    `json:"customerName"`
	Date            *time.Time `json:"date"`
	Description     *string    `json:"description"`
	Status          *string    `json:"status" binding:"omitempty,oneof=scheduled done cancelled"`
}

// ============ Аутентификация ============

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

package handler

import (
	"garage-backend/internal/app/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все маршруты. Доступ по ролям проверяет
// общий middleware по таблице middleware.Policies, а не отдельные хуки.
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	router.Use(authMiddleware.WithPolicyCheck())

	// ============ Автомобили ============
	car := router.Group("/car")
	{
		car.POST("/add", h.AddCar)
		car.GET("/list", h.ListCars)
		car.GET("/list/repairedCars", h.ListRepairedCars)
		car.GET("/list/unRepairedCars", h.ListUnRepairedCars)
		car.PUT("/update", h.UpdateCar)
		car.DELETE("/delete/:licensePlate", h.DeleteCar)
		car.PUT("/changeStatusToRepaired/:licensePlate", h.ChangeStatusToRepaired)
		car.GET("/getCustomer/:licensePlate", h.GetCustomerByCarLicensePlate)

		// Ядро: установка деталей и привязка ремонтных операций
		car.POST("/installPartsInCar/:licensePlate/:partId", h.InstallPartsInCar)
		car.POST("/addRepairingActionsInCar/:licensePlate/:operationId", h.AddRepairingActionsInCar)

		// Документы машины
		car.POST("/uploadDocument/:licensePlate", h.UploadCarDocument)
		car.GET("/getDocuments/:licensePlate", h.GetCarDocument)
	}

	// ============ Клиенты ============
	customer := router.Group("/customer")
	{
		customer.POST("/add", h.AddCustomer)
		customer.GET("/list", h.ListCustomers)
		customer.PUT("/update", h.UpdateCustomer)
		customer.DELETE("/delete/:id", h.DeleteCustomer)
	}

	// ============ Запчасти ============
	parts := router.Group("/parts")
	{
		parts.POST("/add", h.AddPart)
		parts.GET("/list", h.ListParts)
		parts.PUT("/update", h.UpdatePart)
		parts.DELETE("/delete/:id", h.DeletePart)
		parts.POST("/:id/image", h.UploadPartImage)
	}

	// ============ Ремонтные операции ============
	operations := router.Group("/repairOperations")
	{
		operations.POST("/add", h.AddRepairOperation)
		operations.GET("/list", h.ListRepairOperations)
		operations.PUT("/update", h.UpdateRepairOperation)
		operations.DELETE("/delete/:id", h.DeleteRepairOperation)
	}

	// ============ Квитанции ============
	receipts := router.Group("/receipts")
	{
		receipts.POST("/generate/:licensePlate", h.GenerateReceipt)
		receipts.GET("/list", h.ListReceipts)
		receipts.GET("/getByLicensePlate/:licensePlate", h.GetReceiptsByLicensePlate)
		receipts.PUT("/update", h.UpdateReceipt)
		receipts.PUT("/changeStatusToPaid/:id", h.ChangeReceiptStatusToPaid)
		receipts.DELETE("/delete/:id", h.DeleteReceipt)
	}

	// ============ Записи на приём ============
	appointments := router.Group("/appointments")
	{
		appointments.POST("/add", h.AddAppointment)
		appointments.GET("/list", h.ListAppointments)
		appointments.PUT("/update", h.UpdateAppointment)
		appointments.DELETE("/delete/:id", h.DeleteAppointment)
	}

	// ============ Аутентификация ============
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.LoginUser)
		auth.POST("/logout", h.AuthHandler.LogoutUser)
		auth.GET("/profile", h.AuthHandler.GetUserProfile)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", h.Ping)
}

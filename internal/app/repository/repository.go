package repository

import (
	"errors"
	"fmt"

	"garage-backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Ошибки "не найдено" - по одной на сущность, чтобы обработчики
// могли отдать 404 с правильным сообщением
var (
	ErrCarNotFound         = errors.New("car not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrPartNotFound        = errors.New("part not found")
	ErrOperationNotFound   = errors.New("repair operation not found")
	ErrReceiptNotFound     = errors.New("receipt not found")
	ErrDocumentNotFound    = errors.New("car document not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrUserNotFound        = errors.New("user not found")
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB оборачивает готовое подключение (в тестах - sqlite)
func NewWithDB(db *gorm.DB) (*Repository, error) {
	err := db.AutoMigrate(
		&ds.User{},
		&ds.Customer{},
		&ds.Car{},
		&ds.CarDocument{},
		&ds.Part{},
		&ds.RepairOperation{},
		&ds.CarPart{},
		&ds.CarRepairOperation{},
		&ds.Receipt{},
		&ds.ReceiptPart{},
		&ds.ReceiptOperation{},
		&ds.Appointment{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

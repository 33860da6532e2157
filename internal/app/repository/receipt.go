package repository

import (
	"errors"

	"garage-backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для квитанций (ORM)

// GenerateReceipt формирует квитанцию по текущему состоянию машины.
// Списки деталей и операций копируются по значению, итог считается строго:
// total = inspection + sum(parts) + sum(operations).
// Защиты от повторной генерации нет: два вызова дают две квитанции.
func (r *Repository) GenerateReceipt(licensePlate string, inspectionAmount float64) (*ds.Receipt, error) {
	var receipt ds.Receipt
	err := r.db.Transaction(func(tx *gorm.DB) error {
		car, err := r.findCarByLicensePlate(tx, licensePlate)
		if err != nil {
			return err
		}

		parts, err := r.carParts(tx, car.ID)
		if err != nil {
			return err
		}
		operations, err := r.carOperations(tx, car.ID)
		if err != nil {
			return err
		}

		var partsAmount float64
		partsSnapshot := make([]ds.ReceiptPart, len(parts))
		for i, p := range parts {
			partsAmount += p.Price
			partsSnapshot[i] = ds.ReceiptPart{Name: p.Name, Price: p.Price}
		}

		var operationsAmount float64
		operationsSnapshot := make([]ds.ReceiptOperation, len(operations))
		for i, op := range operations {
			operationsAmount += op.Price
			operationsSnapshot[i] = ds.ReceiptOperation{RepairAction: op.RepairAction, Price: op.Price}
		}

		receipt = ds.Receipt{
			CarLicensePlate:        car.LicensePlate,
			Status:                 ds.ReceiptStatusPending,
			InspectionAmount:       inspectionAmount,
			PartsAmount:            partsAmount,
			RepairOperationsAmount: operationsAmount,
			TotalAmountOfRepairing: inspectionAmount + partsAmount + operationsAmount,
			PartsList:              partsSnapshot,
			RepairOperationsList:   operationsSnapshot,
		}
		return tx.Create(&receipt).Error
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// ListReceipts возвращает все квитанции со снимками
func (r *Repository) ListReceipts() ([]ds.Receipt, error) {
	receipts := []ds.Receipt{}
	err := r.db.Preload("PartsList").Preload("RepairOperationsList").Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

// GetReceiptsByLicensePlate фильтрует по денормализованному госномеру.
// Существование машины не проверяется.
func (r *Repository) GetReceiptsByLicensePlate(licensePlate string) ([]ds.Receipt, error) {
	receipts := []ds.Receipt{}
	err := r.db.Preload("PartsList").Preload("RepairOperationsList").
		Where("car_license_plate = ?", licensePlate).
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

// GetReceiptByID возвращает одну квитанцию со снимками
func (r *Repository) GetReceiptByID(id uint) (*ds.Receipt, error) {
	var receipt ds.Receipt
	err := r.db.Preload("PartsList").Preload("RepairOperationsList").First(&receipt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiptNotFound
		}
		return nil, err
	}
	return &receipt, nil
}

// UpdateReceipt - полная замена квитанции по существующему id.
// Суммы не пересчитываются: что прислали, то и сохраняется.
func (r *Repository) UpdateReceipt(receipt *ds.Receipt) (*ds.Receipt, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing ds.Receipt
		if err := tx.First(&existing, receipt.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReceiptNotFound
			}
			return err
		}

		// Старые снимки заменяются присланными
		if err := tx.Where("receipt_id = ?", receipt.ID).Delete(&ds.ReceiptPart{}).Error; err != nil {
			return err
		}
		if err := tx.Where("receipt_id = ?", receipt.ID).Delete(&ds.ReceiptOperation{}).Error; err != nil {
			return err
		}

		if err := tx.Omit("PartsList", "RepairOperationsList").Save(receipt).Error; err != nil {
			return err
		}
		for i := range receipt.PartsList {
			receipt.PartsList[i].ID = 0
			receipt.PartsList[i].ReceiptID = receipt.ID
		}
		if len(receipt.PartsList) > 0 {
			if err := tx.Create(&receipt.PartsList).Error; err != nil {
				return err
			}
		}
		for i := range receipt.RepairOperationsList {
			receipt.RepairOperationsList[i].ID = 0
			receipt.RepairOperationsList[i].ReceiptID = receipt.ID
		}
		if len(receipt.RepairOperationsList) > 0 {
			if err := tx.Create(&receipt.RepairOperationsList).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetReceiptByID(receipt.ID)
}

// ChangeReceiptStatusToPaid переводит квитанцию pending -> Paid,
// остальные поля не трогает
func (r *Repository) ChangeReceiptStatusToPaid(id uint) (*ds.Receipt, error) {
	var receipt ds.Receipt
	err := r.db.First(&receipt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiptNotFound
		}
		return nil, err
	}

	if err := r.db.Model(&receipt).Update("status", ds.ReceiptStatusPaid).Error; err != nil {
		return nil, err
	}
	return r.GetReceiptByID(id)
}

// DeleteReceipt удаляет квитанцию вместе со снимками
func (r *Repository) DeleteReceipt(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var receipt ds.Receipt
		if err := tx.First(&receipt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReceiptNotFound
			}
			return err
		}

		if err := tx.Where("receipt_id = ?", id).Delete(&ds.ReceiptPart{}).Error; err != nil {
			return err
		}
		if err := tx.Where("receipt_id = ?", id).Delete(&ds.ReceiptOperation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&receipt).Error
	})
}

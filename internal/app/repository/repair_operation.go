package repository

import (
	"errors"

	"garage-backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для каталога ремонтных операций (ORM)

func (r *Repository) CreateRepairOperation(operation *ds.RepairOperation) error {
	return r.db.Create(operation).Error
}

func (r *Repository) ListRepairOperations() ([]ds.RepairOperation, error) {
	operations := []ds.RepairOperation{}
	err := r.db.Order("id").Find(&operations).Error
	if err != nil {
		return nil, err
	}
	return operations, nil
}

func (r *Repository) GetRepairOperationByID(id uint) (*ds.RepairOperation, error) {
	var operation ds.RepairOperation
	err := r.db.First(&operation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperationNotFound
		}
		return nil, err
	}
	return &operation, nil
}

func (r *Repository) UpdateRepairOperation(operation *ds.RepairOperation) (*ds.RepairOperation, error) {
	existing, err := r.GetRepairOperationByID(operation.ID)
	if err != nil {
		return nil, err
	}

	existing.RepairAction = operation.RepairAction
	existing.Price = operation.Price
	if err := r.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *Repository) DeleteRepairOperation(id uint) error {
	res := r.db.Delete(&ds.RepairOperation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOperationNotFound
	}
	return nil
}

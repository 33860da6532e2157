package repository

import (
	"errors"

	"garage-backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для автомобилей (ORM)

// carParts собирает список установленных деталей в порядке установки
func (r *Repository) carParts(tx *gorm.DB, carID uint) ([]ds.Part, error) {
	parts := []ds.Part{}
	err := tx.Table("parts").
		Select("parts.*").
		Joins("JOIN car_parts ON car_parts.part_id = parts.id").
		Where("car_parts.car_id = ?", carID).
		Order("car_parts.id").
		Scan(&parts).Error
	if err != nil {
		return nil, err
	}
	return parts, nil
}

// carOperations собирает список привязанных ремонтных операций
func (r *Repository) carOperations(tx *gorm.DB, carID uint) ([]ds.RepairOperation, error) {
	operations := []ds.RepairOperation{}
	err := tx.Table("repair_operations").
		Select("repair_operations.*").
		Joins("JOIN car_repair_operations ON car_repair_operations.operation_id = repair_operations.id").
		Where("car_repair_operations.car_id = ?", carID).
		Order("car_repair_operations.id").
		Scan(&operations).Error
	if err != nil {
		return nil, err
	}
	return operations, nil
}

// loadCarLists наполняет вычисляемые списки машины
func (r *Repository) loadCarLists(tx *gorm.DB, car *ds.Car) error {
	parts, err := r.carParts(tx, car.ID)
	if err != nil {
		return err
	}
	operations, err := r.carOperations(tx, car.ID)
	if err != nil {
		return err
	}
	car.PartsList = parts
	car.RepairOperationsList = operations
	return nil
}

func (r *Repository) findCarByLicensePlate(tx *gorm.DB, licensePlate string) (*ds.Car, error) {
	var car ds.Car
	err := tx.Where("license_plate = ?", licensePlate).First(&car).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return &car, nil
}

// GetCarByLicensePlate возвращает машину со списками деталей и операций
func (r *Repository) GetCarByLicensePlate(licensePlate string) (*ds.Car, error) {
	car, err := r.findCarByLicensePlate(r.db.Preload("Customer").Preload("CarDocument"), licensePlate)
	if err != nil {
		return nil, err
	}
	if err := r.loadCarLists(r.db, car); err != nil {
		return nil, err
	}
	return car, nil
}

// AddCar создает машину вместе с её владельцем (каскадное создание клиента)
func (r *Repository) AddCar(car *ds.Car) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if car.Customer != nil {
			if err := tx.Create(car.Customer).Error; err != nil {
				return err
			}
			car.CustomerID = &car.Customer.ID
		}
		if car.RepairStatus == "" {
			car.RepairStatus = ds.RepairStatusPending
		}
		return tx.Create(car).Error
	})
}

// ListCars возвращает все машины
func (r *Repository) ListCars() ([]ds.Car, error) {
	cars := []ds.Car{}
	err := r.db.Preload("Customer").Preload("CarDocument").Find(&cars).Error
	if err != nil {
		return nil, err
	}
	for i := range cars {
		if err := r.loadCarLists(r.db, &cars[i]); err != nil {
			return nil, err
		}
	}
	return cars, nil
}

// ListCarsByRepairStatus фильтрует машины по статусу без учета регистра
func (r *Repository) ListCarsByRepairStatus(status string) ([]ds.Car, error) {
	cars := []ds.Car{}
	err := r.db.Preload("Customer").
		Where("LOWER(repair_status) = LOWER(?)", status).
		Find(&cars).Error
	if err != nil {
		return nil, err
	}
	for i := range cars {
		if err := r.loadCarLists(r.db, &cars[i]); err != nil {
			return nil, err
		}
	}
	return cars, nil
}

// UpdateCar - полная замена полей машины, требует существующего id
func (r *Repository) UpdateCar(car *ds.Car) (*ds.Car, error) {
	var existing ds.Car
	err := r.db.First(&existing, car.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	existing.LicensePlate = car.LicensePlate
	existing.RepairStatus = car.RepairStatus
	if err := r.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	if err := r.loadCarLists(r.db, &existing); err != nil {
		return nil, err
	}
	return &existing, nil
}

// ChangeStatusToRepaired переводит машину в статус "repaired"
func (r *Repository) ChangeStatusToRepaired(licensePlate string) (*ds.Car, error) {
	car, err := r.findCarByLicensePlate(r.db, licensePlate)
	if err != nil {
		return nil, err
	}

	car.RepairStatus = ds.RepairStatusRepaired
	if err := r.db.Save(car).Error; err != nil {
		return nil, err
	}
	if err := r.loadCarLists(r.db, car); err != nil {
		return nil, err
	}
	return car, nil
}

// DeleteCar удаляет машину: сначала отвязываем всё, чем она владеет,
// потом удаляем строку - без этого падают ограничения целостности
func (r *Repository) DeleteCar(licensePlate string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		car, err := r.findCarByLicensePlate(tx, licensePlate)
		if err != nil {
			return err
		}

		if err := tx.Where("car_id = ?", car.ID).Delete(&ds.CarPart{}).Error; err != nil {
			return err
		}
		if err := tx.Where("car_id = ?", car.ID).Delete(&ds.CarRepairOperation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("car_id = ?", car.ID).Delete(&ds.CarDocument{}).Error; err != nil {
			return err
		}
		if err := tx.Model(car).Update("customer_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(car).Error
	})
}

// GetCustomerByCarLicensePlate возвращает владельца машины
func (r *Repository) GetCustomerByCarLicensePlate(licensePlate string) (*ds.Customer, error) {
	car, err := r.findCarByLicensePlate(r.db.Preload("Customer"), licensePlate)
	if err != nil {
		return nil, err
	}
	return car.Customer, nil
}

// InstallPart устанавливает деталь в машину: проверка остатка, списание
// со склада и привязка к машине идут в одной транзакции.
// Несуществующий id детали и нулевой остаток дают один и тот же сигнал.
func (r *Repository) InstallPart(licensePlate string, partID uint) ([]ds.Part, error) {
	var partsList []ds.Part
	err := r.db.Transaction(func(tx *gorm.DB) error {
		car, err := r.findCarByLicensePlate(tx, licensePlate)
		if err != nil {
			return err
		}

		res := tx.Model(&ds.Part{}).
			Where("id = ? AND stock > 0", partID).
			UpdateColumn("stock", gorm.Expr("stock - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPartNotFound
		}

		if err := tx.Create(&ds.CarPart{CarID: car.ID, PartID: partID}).Error; err != nil {
			return err
		}

		partsList, err = r.carParts(tx, car.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return partsList, nil
}

// AttachOperation привязывает ремонтную операцию к машине.
// Операции каталога многоразовые, ограничений на количество нет.
func (r *Repository) AttachOperation(licensePlate string, operationID uint) ([]ds.RepairOperation, error) {
	var operationsList []ds.RepairOperation
	err := r.db.Transaction(func(tx *gorm.DB) error {
		car, err := r.findCarByLicensePlate(tx, licensePlate)
		if err != nil {
			return err
		}

		var operation ds.RepairOperation
		if err := tx.First(&operation, operationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOperationNotFound
			}
			return err
		}

		if err := tx.Create(&ds.CarRepairOperation{CarID: car.ID, OperationID: operation.ID}).Error; err != nil {
			return err
		}

		operationsList, err = r.carOperations(tx, car.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return operationsList, nil
}

// SaveCarDocument сохраняет документ машины, заменяя предыдущий
func (r *Repository) SaveCarDocument(licensePlate, documentName, documentType string, data []byte) (*ds.Car, error) {
	var result *ds.Car
	err := r.db.Transaction(func(tx *gorm.DB) error {
		car, err := r.findCarByLicensePlate(tx, licensePlate)
		if err != nil {
			return err
		}

		if err := tx.Where("car_id = ?", car.ID).Delete(&ds.CarDocument{}).Error; err != nil {
			return err
		}

		doc := ds.CarDocument{
			CarID:        car.ID,
			DocumentName: documentName,
			DocumentType: documentType,
			Document:     data,
		}
		if err := tx.Create(&doc).Error; err != nil {
			return err
		}

		car.CarDocument = &doc
		result = car
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := r.loadCarLists(r.db, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetCarDocument возвращает документ машины по госномеру
func (r *Repository) GetCarDocument(licensePlate string) (*ds.CarDocument, error) {
	car, err := r.findCarByLicensePlate(r.db, licensePlate)
	if err != nil {
		return nil, err
	}

	var doc ds.CarDocument
	err = r.db.Where("car_id = ?", car.ID).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

package repository

import (
	"errors"

	"garage-backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для клиентов (ORM)

func (r *Repository) CreateCustomer(customer *ds.Customer) error {
	return r.db.Create(customer).Error
}

func (r *Repository) ListCustomers() ([]ds.Customer, error) {
	customers := []ds.Customer{}
	err := r.db.Order("id").Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *Repository) GetCustomerByID(id uint) (*ds.Customer, error) {
	var customer ds.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *Repository) UpdateCustomer(customer *ds.Customer) (*ds.Customer, error) {
	existing, err := r.GetCustomerByID(customer.ID)
	if err != nil {
		return nil, err
	}

	existing.Surname = customer.Surname
	existing.Address = customer.Address
	existing.PhoneNumber = customer.PhoneNumber
	if err := r.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCustomer удаляет клиента; машины остаются без владельца
func (r *Repository) DeleteCustomer(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var customer ds.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		if err := tx.Model(&ds.Car{}).Where("customer_id = ?", id).
			Update("customer_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
}

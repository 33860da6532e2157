package repository

import (
	"errors"

	"garage-backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для запчастей (ORM)

func (r *Repository) CreatePart(part *ds.Part) error {
	return r.db.Create(part).Error
}

func (r *Repository) ListParts() ([]ds.Part, error) {
	parts := []ds.Part{}
	err := r.db.Order("id").Find(&parts).Error
	if err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *Repository) GetPartByID(id uint) (*ds.Part, error) {
	var part ds.Part
	err := r.db.First(&part, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartNotFound
		}
		return nil, err
	}
	return &part, nil
}

func (r *Repository) UpdatePart(part *ds.Part) (*ds.Part, error) {
	existing, err := r.GetPartByID(part.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = part.Name
	existing.Price = part.Price
	existing.Stock = part.Stock
	if err := r.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *Repository) DeletePart(id uint) error {
	res := r.db.Delete(&ds.Part{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPartNotFound
	}
	return nil
}

// SetPartImage записывает имя объекта MinIO на карточку запчасти
func (r *Repository) SetPartImage(id uint, imageURL string) (*ds.Part, error) {
	part, err := r.GetPartByID(id)
	if err != nil {
		return nil, err
	}

	part.ImageURL = &imageURL
	if err := r.db.Save(part).Error; err != nil {
		return nil, err
	}
	return part, nil
}

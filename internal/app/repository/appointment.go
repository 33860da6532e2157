package repository

import (
	"errors"

	"garage-backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для записей на приём (ORM)

func (r *Repository) CreateAppointment(appointment *ds.Appointment) error {
	if appointment.Status == "" {
		appointment.Status = "scheduled"
	}
	return r.db.Create(appointment).Error
}

func (r *Repository) ListAppointments() ([]ds.Appointment, error) {
	appointments := []ds.Appointment{}
	err := r.db.Order("date").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *Repository) GetAppointmentByID(id uint) (*ds.Appointment, error) {
	var appointment ds.Appointment
	err := r.db.First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *Repository) SaveAppointment(appointment *ds.Appointment) error {
	return r.db.Save(appointment).Error
}

func (r *Repository) DeleteAppointment(id uint) error {
	res := r.db.Delete(&ds.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

package ds

import "time"

// 11. Запись на приём в гараж
type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CarLicensePlate string    `gorm:"type:varchar(20);index" json:"carLicensePlate"`
	CustomerName    string    `gorm:"type:varchar(100)" json:"customerName"`
	Date            time.Time `gorm:"not null" json:"date"`
	Description     string    `gorm:"type:text" json:"description"`
	Status          string    `gorm:"type:varchar(20);default:'scheduled'" json:"status"` // scheduled, done, cancelled
}

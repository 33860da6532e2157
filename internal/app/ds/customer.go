package ds

// 1. Таблица клиентов гаража
type Customer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Surname     string `gorm:"type:varchar(100);not null" json:"surname"`
	Address     string `gorm:"type:varchar(255)" json:"address"`
	PhoneNumber string `gorm:"type:varchar(30)" json:"phoneNumber"`
}

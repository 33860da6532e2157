package ds

import "garage-backend/internal/app/role"

// 12. Таблица сотрудников гаража
type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Username string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password string    `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash
	FullName string    `gorm:"type:varchar(100)" json:"fullName"`
	Role     role.Role `gorm:"type:varchar(20);not null" json:"role"`
}

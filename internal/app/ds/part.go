package ds

// 6. Таблица запчастей на складе. Stock не может уходить в минус:
// установка возможна только при stock > 0.
type Part struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"type:varchar(100);not null" json:"name"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock    int     `gorm:"not null;default:0" json:"stock"`
	ImageURL *string `gorm:"type:varchar(255)" json:"image_url,omitempty"` // Имя объекта в MinIO, nullable
}

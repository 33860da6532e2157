package ds

// Статусы квитанции: pending -> Paid, других переходов нет
const (
	ReceiptStatusPending = "pending"
	ReceiptStatusPaid    = "Paid"
)

// 8. Квитанция. Госномер денормализован (не живой внешний ключ),
// списки деталей и операций - снимки по значению на момент генерации.
type Receipt struct {
	ID                     uint    `gorm:"primaryKey" json:"id"`
	CarLicensePlate        string  `gorm:"type:varchar(20);index;not null" json:"carLicensePlate"`
	Status                 string  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	InspectionAmount       float64 `gorm:"type:decimal(10,2);not null" json:"inspectionAmount"`
	PartsAmount            float64 `gorm:"type:decimal(12,2);not null" json:"partsAmount"`
	RepairOperationsAmount float64 `gorm:"type:decimal(12,2);not null" json:"repairOperationsAmount"`
	TotalAmountOfRepairing float64 `gorm:"type:decimal(12,2);not null" json:"totalAmountOfRepairing"`

	PartsList            []ReceiptPart      `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"partsList"`
	RepairOperationsList []ReceiptOperation `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"repairOperationsList"`
}

// 9. Снимок детали в квитанции (копия имени и цены, без ссылки на склад)
type ReceiptPart struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ReceiptID uint    `gorm:"not null;index" json:"-"`
	Name      string  `gorm:"type:varchar(100);not null" json:"name"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

// 10. Снимок ремонтной операции в квитанции
type ReceiptOperation struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	ReceiptID    uint    `gorm:"not null;index" json:"-"`
	RepairAction string  `gorm:"type:varchar(255);not null" json:"repairAction"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

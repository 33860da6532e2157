package ds

// Допустимые статусы ремонта автомобиля
const (
	RepairStatusPending  = "pending"
	RepairStatusUnderway = "Under Repairing"
	RepairStatusRepaired = "repaired"
)

// 2. Таблица автомобилей. Госномер - уникальный бизнес-ключ,
// по нему идут почти все операции вместо внутреннего id.
type Car struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	LicensePlate string `gorm:"type:varchar(20);unique;not null" json:"licensePlate"`
	RepairStatus string `gorm:"type:varchar(20);not null;default:'pending'" json:"repairStatus"` // pending, Under Repairing, repaired
	CustomerID   *uint  `gorm:"default:null" json:"-"`

	Customer             *Customer         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CarDocument          *CarDocument      `gorm:"foreignKey:CarID" json:"carDocument,omitempty"`
	PartsList            []Part            `gorm:"-" json:"partsList"`
	RepairOperationsList []RepairOperation `gorm:"-" json:"repairOperationsList"`
}

// 3. Связка автомобиль-деталь. Собственный PK позволяет установить
// одну и ту же деталь в машину несколько раз.
type CarPart struct {
	ID     uint `gorm:"primaryKey"`
	CarID  uint `gorm:"not null;index"`
	PartID uint `gorm:"not null;index"`

	Car  Car  `gorm:"foreignKey:CarID"`
	Part Part `gorm:"foreignKey:PartID"`
}

// 4. Связка автомобиль-ремонтная операция (повторные записи разрешены)
type CarRepairOperation struct {
	ID          uint `gorm:"primaryKey"`
	CarID       uint `gorm:"not null;index"`
	OperationID uint `gorm:"not null;index"`

	Car       Car             `gorm:"foreignKey:CarID"`
	Operation RepairOperation `gorm:"foreignKey:OperationID"`
}

// 5. Документ автомобиля, хранится в базе как бинарный blob
type CarDocument struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CarID        uint   `gorm:"not null;index" json:"-"`
	DocumentName string `gorm:"type:varchar(255);not null" json:"documentName"`
	DocumentType string `gorm:"type:varchar(100)" json:"documentType"`
	Document     []byte `json:"-"`
}

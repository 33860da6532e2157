package ds

// 7. Справочник ремонтных операций - неизменяемый каталог,
// одну операцию можно привязывать к машинам сколько угодно раз.
type RepairOperation struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RepairAction string  `gorm:"type:varchar(255);not null" json:"repairAction"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

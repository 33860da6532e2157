package role

// Role - роль сотрудника гаража
type Role string

const (
	Admin          Role = "ADMIN"
	Cashier        Role = "CASHIER"
	Backoffice     Role = "BACKOFFICE"
	Mechanic       Role = "MECHANIC"
	Administrative Role = "ADMINISTRATIVE"
)

// Valid проверяет, что роль входит в список известных
func (r Role) Valid() bool {
	switch r {
	case Admin, Cashier, Backoffice, Mechanic, Administrative:
		return true
	}
	return false
}

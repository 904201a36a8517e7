package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin = "super_admin"
	RoleShopOwner  = "shop_owner"
	RoleManager    = "manager"
	RoleStaff      = "staff"
)

// Estados válidos para User y Shop.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// ValidRole informa si role es uno de los valores del enum.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleShopOwner, RoleManager, RoleStaff:
		return true
	}
	return false
}

// ValidStatus informa si status es uno de los valores del enum.
func ValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// User representa un usuario del sistema. La asociación a Shop es débil:
// relación opcional, sin propiedad ni ciclo de vida en cascada.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	PhoneNumber  string
	Role         string  // super_admin, shop_owner, manager, staff
	Status       string  // active, inactive, suspended
	ShopID       *string // nil = sin tienda asociada
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time // nil hasta el primer login
}

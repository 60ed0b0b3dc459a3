package entity

import "time"

// Roles válidos para Usuario.
const (
	RolUsuario     = "usuario"
	RolFoodie      = "foodie"
	RolRestaurante = "restaurante"
)

// ValidRol indica si el rol es uno de los aceptados por el sistema.
func ValidRol(rol string) bool {
	switch rol {
	case RolUsuario, RolFoodie, RolRestaurante:
		return true
	}
	return false
}

// Usuario representa una cuenta del sistema. El email es único
// (case-insensitive, la unicidad se garantiza en el store) y el rol solo
// cambia vía la operación explícita de actualización de rol.
type Usuario struct {
	ID             string
	NombreCompleto string
	Email          string    // siempre normalizado a minúsculas
	PasswordHash   string    // bcrypt hash, nunca plano en dominio después de persistir
	Rol            string    // usuario, foodie, restaurante
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

package repository

import "github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
// Las implementaciones devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	// Create persiste un usuario nuevo. Devuelve domain.ErrEmailAlreadyExists
	// si el email (normalizado a minúsculas) ya está registrado.
	Create(user *entity.Usuario) error
	FindByEmail(email string) (*entity.Usuario, error)
	FindByID(id string) (*entity.Usuario, error)
	// UpdateRol cambia el rol y refresca updated_at; devuelve el usuario
	// actualizado o (nil, nil) si no existe.
	UpdateRol(id, rol string) (*entity.Usuario, error)
}

package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	NombreCompleto string `json:"nombreCompleto" validate:"required,min=3,max=200"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateRolRequest entrada para actualizar el rol del usuario autenticado.
type UpdateRolRequest struct {
	Rol string `json:"rol" validate:"required"`
}

// UsuarioResponse vista segura de un usuario: nunca incluye el hash de contraseña.
type UsuarioResponse struct {
	ID             string    `json:"id"`
	NombreCompleto string    `json:"nombreCompleto"`
	Email          string    `json:"email"`
	Rol            string    `json:"rol"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AuthResponse sobre de respuesta de registro/login/verificación.
type AuthResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Token   string           `json:"token,omitempty"`
	Usuario *UsuarioResponse `json:"usuario,omitempty"`
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("contraseña incorrecta")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Ciclo de vida de visitas.
	ErrVisitNotFound     = errors.New("visita no encontrada")
	ErrInvalidTransition = errors.New("transición de estado inválida")

	// Evidencias de visitas completadas.
	ErrWindowClosed       = errors.New("la ventana de evidencia está cerrada")
	ErrIncompleteEvidence = errors.New("evidencia incompleta")
	ErrInvalidLink        = errors.New("el link no corresponde a una red social soportada")
)

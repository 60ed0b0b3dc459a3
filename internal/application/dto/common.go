package dto

import "github.com/foodiesbnb/foodiesbnb-api/pkg/validation"

// ErrorResponse cuerpo de error HTTP. Sigue el sobre {success:false, message}
// del API original; Code permite a los clientes distinguir casos sin parsear
// el mensaje y Errores lleva el detalle por campo cuando aplica.
type ErrorResponse struct {
	Success bool                    `json:"success"`
	Code    string                  `json:"code,omitempty"`
	Message string                  `json:"message"`
	Errores []validation.FieldError `json:"errores,omitempty"`
}

// Err construye un ErrorResponse simple.
func Err(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}

// ErrValidation construye un ErrorResponse con errores por campo.
func ErrValidation(errores []validation.FieldError) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Code:    "VALIDATION",
		Message: "Datos de entrada inválidos",
		Errores: errores,
	}
}

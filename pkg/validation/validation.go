// Package validation envuelve go-playground/validator para producir errores
// por campo con mensajes en español, listos para devolver en la respuesta HTTP.
package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError error de validación de un campo concreto.
type FieldError struct {
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Struct valida un struct según sus tags `validate` y devuelve la lista de
// errores por campo. Lista vacía (nil) significa que el struct es válido.
func Struct(s any) []FieldError {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "entrada inválida"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldName(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldName usa el nombre del campo en minúscula inicial, igual que el JSON de entrada.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "este campo es requerido"
	case "email":
		return "debe ser un email válido"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser al menos %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser como máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "uuid":
		return "debe ser un UUID válido"
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	default:
		return "valor inválido"
	}
}

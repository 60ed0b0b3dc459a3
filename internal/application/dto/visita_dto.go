package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestauranteDTO snapshot del restaurante al agendar. El esquema es canónico:
// los nombres alternativos de campos del cliente se rechazan en el borde,
// nunca se normalizan dentro de la lógica de visitas.
type RestauranteDTO struct {
	ID          string   `json:"id" validate:"required"`
	Nombre      string   `json:"nombre" validate:"required"`
	Ubicacion   string   `json:"ubicacion" validate:"required"`
	Tipo        string   `json:"tipo" validate:"required"`
	Imagen      string   `json:"imagen,omitempty"`
	Descripcion string   `json:"descripcion,omitempty"`
	Horario     string   `json:"horario,omitempty"`
	Beneficios  []string `json:"beneficios,omitempty"`
}

// CreateVisitaRequest entrada para agendar una visita.
type CreateVisitaRequest struct {
	Restaurante     RestauranteDTO `json:"restaurante" validate:"required"`
	Fecha           string         `json:"fecha" validate:"required,datetime=2006-01-02"`
	Hora            string         `json:"hora" validate:"required,datetime=15:04"`
	NumeroPersonas  int            `json:"numeroPersonas" validate:"required,min=1,max=20"`
	NotasEspeciales string         `json:"notasEspeciales" validate:"omitempty,max=500"`
}

// UpdateVisitaRequest entrada parcial para editar una visita programada.
// Solo fecha/hora/numeroPersonas/notasEspeciales son mutables.
type UpdateVisitaRequest struct {
	Fecha           *string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Hora            *string `json:"hora" validate:"omitempty,datetime=15:04"`
	NumeroPersonas  *int    `json:"numeroPersonas" validate:"omitempty,min=1,max=20"`
	NotasEspeciales *string `json:"notasEspeciales" validate:"omitempty,max=500"`
}

// EvidenciaRequest entrada para registrar evidencia de una visita completada.
type EvidenciaRequest struct {
	Link  string          `json:"link"`
	Foto  string          `json:"foto"`
	Monto decimal.Decimal `json:"montoGastado"`
}

// VisitaResponse vista de una visita.
type VisitaResponse struct {
	ID              string         `json:"id"`
	Restaurante     RestauranteDTO `json:"restaurante"`
	UserID          string         `json:"userId"`
	Fecha           string         `json:"fecha"`
	Hora            string         `json:"hora"`
	NumeroPersonas  int            `json:"numeroPersonas"`
	NotasEspeciales string         `json:"notasEspeciales,omitempty"`
	Estado          string         `json:"estado"`
	CodigoReserva   string         `json:"codigoReserva"`
	CreatedAt       time.Time      `json:"fechaCreacion"`
	UpdatedAt       time.Time      `json:"fechaActualizacion"`
}

// VisitaOpResponse sobre de respuesta para operaciones sobre una visita.
type VisitaOpResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Visita  *VisitaResponse `json:"visita,omitempty"`
}

// VisitaListResponse sobre de respuesta para listados de visitas.
type VisitaListResponse struct {
	Success bool             `json:"success"`
	Visitas []VisitaResponse `json:"visitas"`
}

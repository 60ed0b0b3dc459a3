package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Evidencia prueba de contenido en redes sociales de una visita completada.
// Relación 1:1 con la visita; solo se acepta mientras la visita está en
// "completada" y dentro de las 48 horas posteriores a la fecha de la visita.
type Evidencia struct {
	ID        string
	VisitaID  string
	Link      string          // URL pública en instagram.com o tiktok.com
	Foto      string          // referencia a la foto subida
	Monto     decimal.Decimal // monto gastado en la visita
	CreatedAt time.Time
}

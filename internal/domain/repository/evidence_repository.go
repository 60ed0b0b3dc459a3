package repository

import "github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"

// EvidenceRepository puerto de persistencia de evidencias (1:1 con visita).
type EvidenceRepository interface {
	// Create persiste la evidencia. Devuelve domain.ErrDuplicate si la visita
	// ya tiene evidencia registrada.
	Create(evidencia *entity.Evidencia) error
	FindByVisita(visitaID string) (*entity.Evidencia, error)
}

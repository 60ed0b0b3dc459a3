package repository

import "github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"

// VisitRepository puerto de persistencia de visitas.
//
// Las mutaciones con guarda de estado (Cancel, UpdateDetails, Complete) se
// aplican como updates condicionales en el store (id + dueño + estado
// esperado) para que dos sesiones concurrentes no pisen la misma visita.
type VisitRepository interface {
	Create(visita *entity.Visita) error
	FindByID(id string) (*entity.Visita, error)
	FindByIDAndUser(id, userID string) (*entity.Visita, error)
	// ListByUser devuelve las visitas del usuario ordenadas ascendentemente
	// por fecha+hora, con la fecha de creación como desempate estable.
	ListByUser(userID string) ([]*entity.Visita, error)
	ListByUserAndEstado(userID, estado string) ([]*entity.Visita, error)
	// Cancel pasa programada → cancelada. Devuelve domain.ErrVisitNotFound si
	// la visita no existe para ese dueño y domain.ErrInvalidTransition si ya
	// no está en programada.
	Cancel(id, userID string) error
	// UpdateDetails muta fecha/hora/numeroPersonas/notasEspeciales con la
	// misma guarda de dueño+estado que Cancel.
	UpdateDetails(visita *entity.Visita) error
	// Complete pasa programada → completada (transición administrativa).
	Complete(id string) error
}

package visita

import (
	"context"

	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/repository"
)

// EvidenceTxRunner ejecuta el registro de evidencia dentro de una transacción:
// la lectura de la visita y el insert de la evidencia van en la misma unidad.
type EvidenceTxRunner interface {
	RunEvidence(ctx context.Context, fn func(
		visits repository.VisitRepository,
		evidences repository.EvidenceRepository,
	) error) error
}

// ReservationPDFGenerator genera el comprobante PDF de una reserva.
type ReservationPDFGenerator interface {
	GenerateReservationPDF(ctx context.Context, visita *entity.Visita) ([]byte, error)
}

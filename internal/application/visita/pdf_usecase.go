package visita

import (
	"context"
	"fmt"

	"github.com/foodiesbnb/foodiesbnb-api/internal/domain"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/repository"
)

// PDFUseCase genera el comprobante PDF de una reserva para el usuario dueño.
type PDFUseCase struct {
	visitRepo repository.VisitRepository
	generator ReservationPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(visitRepo repository.VisitRepository, generator ReservationPDFGenerator) *PDFUseCase {
	return &PDFUseCase{visitRepo: visitRepo, generator: generator}
}

// DownloadReservationPDF recupera la visita del dueño y genera el comprobante.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrVisitNotFound     si la visita no existe o no es del caller.
func (uc *PDFUseCase) DownloadReservationPDF(ctx context.Context, userID, visitID string) (pdfBytes []byte, filename string, err error) {
	v, err := uc.visitRepo.FindByIDAndUser(visitID, userID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener visita: %w", err)
	}
	if v == nil {
		return nil, "", domain.ErrVisitNotFound
	}

	pdfBytes, err = uc.generator.GenerateReservationPDF(ctx, v)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return pdfBytes, "reserva-" + v.CodigoReserva + ".pdf", nil
}

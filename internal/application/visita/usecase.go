package visita

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/foodiesbnb/foodiesbnb-api/internal/application/dto"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/repository"
	domvisit "github.com/foodiesbnb/foodiesbnb-api/internal/domain/visit"
)

// UseCase ciclo de vida de visitas: agendar, listar, editar, cancelar,
// completar y registrar evidencia. Todas las operaciones de cliente reciben
// el userID ya resuelto del token; la guarda de dueño vive en el store.
type UseCase struct {
	visitRepo  repository.VisitRepository
	evidenceTx EvidenceTxRunner
	now        func() time.Time
}

// NewUseCase construye el caso de uso de visitas.
func NewUseCase(visitRepo repository.VisitRepository, evidenceTx EvidenceTxRunner) *UseCase {
	return &UseCase{visitRepo: visitRepo, evidenceTx: evidenceTx, now: time.Now}
}

// SetClock fija el reloj del caso de uso; solo para tests.
func (uc *UseCase) SetClock(fn func() time.Time) { uc.now = fn }

// Create agenda una visita en estado "programada" con código de reserva
// generado. No se hace chequeo de doble reserva ni de capacidad del
// restaurante (comportamiento heredado del sistema original).
func (uc *UseCase) Create(userID string, in dto.CreateVisitaRequest) (*dto.VisitaOpResponse, error) {
	now := uc.now()
	v := &entity.Visita{
		ID:              uuid.New().String(),
		Restaurante:     toSnapshot(in.Restaurante),
		UserID:          userID,
		Fecha:           in.Fecha,
		Hora:            in.Hora,
		NumeroPersonas:  in.NumeroPersonas,
		NotasEspeciales: in.NotasEspeciales,
		Estado:          entity.EstadoProgramada,
		CodigoReserva:   domvisit.GenerateCodigoReserva(now),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.visitRepo.Create(v); err != nil {
		return nil, err
	}
	return &dto.VisitaOpResponse{
		Success: true,
		Message: "Visita programada exitosamente",
		Visita:  toVisitaResponse(v),
	}, nil
}

// List devuelve todas las visitas del usuario, ordenadas por fecha+hora.
func (uc *UseCase) List(userID string) (*dto.VisitaListResponse, error) {
	visitas, err := uc.visitRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toListResponse(visitas), nil
}

// ListByEstado filtra las visitas del usuario por estado.
func (uc *UseCase) ListByEstado(userID, estado string) (*dto.VisitaListResponse, error) {
	if !entity.ValidEstado(estado) {
		return nil, domain.ErrInvalidInput
	}
	visitas, err := uc.visitRepo.ListByUserAndEstado(userID, estado)
	if err != nil {
		return nil, err
	}
	return toListResponse(visitas), nil
}

// Get devuelve una visita del usuario.
func (uc *UseCase) Get(userID, visitID string) (*dto.VisitaResponse, error) {
	v, err := uc.visitRepo.FindByIDAndUser(visitID, userID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrVisitNotFound
	}
	return toVisitaResponse(v), nil
}

// Update edita fecha/hora/numeroPersonas/notasEspeciales de una visita
// programada del usuario. Cualquier otro estado rechaza la edición.
func (uc *UseCase) Update(userID, visitID string, in dto.UpdateVisitaRequest) (*dto.VisitaOpResponse, error) {
	v, err := uc.visitRepo.FindByIDAndUser(visitID, userID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrVisitNotFound
	}
	if v.Estado != entity.EstadoProgramada {
		return nil, domain.ErrInvalidTransition
	}

	if in.Fecha != nil {
		v.Fecha = *in.Fecha
	}
	if in.Hora != nil {
		v.Hora = *in.Hora
	}
	if in.NumeroPersonas != nil {
		v.NumeroPersonas = *in.NumeroPersonas
	}
	if in.NotasEspeciales != nil {
		v.NotasEspeciales = *in.NotasEspeciales
	}
	v.UpdatedAt = uc.now()

	// El update condicional del store repite la guarda dueño+estado por si
	// otra sesión canceló la visita entre la lectura y este punto.
	if err := uc.visitRepo.UpdateDetails(v); err != nil {
		return nil, err
	}
	return &dto.VisitaOpResponse{
		Success: true,
		Message: "Visita actualizada exitosamente",
		Visita:  toVisitaResponse(v),
	}, nil
}

// Cancel pasa una visita programada del usuario a "cancelada". La transición
// es terminal: no existe des-cancelar.
func (uc *UseCase) Cancel(userID, visitID string) (*dto.VisitaOpResponse, error) {
	if err := uc.visitRepo.Cancel(visitID, userID); err != nil {
		return nil, err
	}
	return &dto.VisitaOpResponse{
		Success: true,
		Message: "Visita cancelada exitosamente",
	}, nil
}

// Complete marca una visita como completada (transición administrativa,
// disparada por el rol restaurante). Abre la ventana de evidencia de 48 horas.
func (uc *UseCase) Complete(visitID string) (*dto.VisitaOpResponse, error) {
	if err := uc.visitRepo.Complete(visitID); err != nil {
		return nil, err
	}
	return &dto.VisitaOpResponse{
		Success: true,
		Message: "Visita marcada como completada",
	}, nil
}

// SubmitEvidence registra la evidencia de una visita completada del usuario.
// Reglas: la visita debe estar en "completada" y dentro de la ventana de 48
// horas; link, foto y monto son obligatorios; el link debe apuntar a una
// plataforma soportada. Todo corre en una transacción del store.
func (uc *UseCase) SubmitEvidence(userID, visitID string, in dto.EvidenciaRequest) (*dto.VisitaOpResponse, error) {
	now := uc.now()

	err := uc.evidenceTx.RunEvidence(context.Background(), func(
		visits repository.VisitRepository,
		evidences repository.EvidenceRepository,
	) error {
		v, err := visits.FindByIDAndUser(visitID, userID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrVisitNotFound
		}
		if v.Estado != entity.EstadoCompletada {
			return domain.ErrWindowClosed
		}
		open, err := domvisit.WindowOpen(v.Fecha, v.Hora, now)
		if err != nil {
			return err
		}
		if !open {
			return domain.ErrWindowClosed
		}
		if in.Link == "" || in.Foto == "" || !in.Monto.IsPositive() {
			return domain.ErrIncompleteEvidence
		}
		if !domvisit.ValidSocialLink(in.Link) {
			return domain.ErrInvalidLink
		}

		return evidences.Create(&entity.Evidencia{
			ID:        uuid.New().String(),
			VisitaID:  visitID,
			Link:      in.Link,
			Foto:      in.Foto,
			Monto:     in.Monto,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.VisitaOpResponse{
		Success: true,
		Message: "Evidencia registrada exitosamente",
	}, nil
}

func toSnapshot(r dto.RestauranteDTO) entity.RestauranteSnapshot {
	return entity.RestauranteSnapshot{
		ID:          r.ID,
		Nombre:      r.Nombre,
		Ubicacion:   r.Ubicacion,
		Tipo:        r.Tipo,
		Imagen:      r.Imagen,
		Descripcion: r.Descripcion,
		Horario:     r.Horario,
		Beneficios:  r.Beneficios,
	}
}

func toVisitaResponse(v *entity.Visita) *dto.VisitaResponse {
	if v == nil {
		return nil
	}
	return &dto.VisitaResponse{
		ID: v.ID,
		Restaurante: dto.RestauranteDTO{
			ID:          v.Restaurante.ID,
			Nombre:      v.Restaurante.Nombre,
			Ubicacion:   v.Restaurante.Ubicacion,
			Tipo:        v.Restaurante.Tipo,
			Imagen:      v.Restaurante.Imagen,
			Descripcion: v.Restaurante.Descripcion,
			Horario:     v.Restaurante.Horario,
			Beneficios:  v.Restaurante.Beneficios,
		},
		UserID:          v.UserID,
		Fecha:           v.Fecha,
		Hora:            v.Hora,
		NumeroPersonas:  v.NumeroPersonas,
		NotasEspeciales: v.NotasEspeciales,
		Estado:          v.Estado,
		CodigoReserva:   v.CodigoReserva,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func toListResponse(visitas []*entity.Visita) *dto.VisitaListResponse {
	out := &dto.VisitaListResponse{Success: true, Visitas: make([]dto.VisitaResponse, 0, len(visitas))}
	for _, v := range visitas {
		out.Visitas = append(out.Visitas, *toVisitaResponse(v))
	}
	return out
}

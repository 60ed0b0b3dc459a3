package foodie

import (
	"time"

	"github.com/google/uuid"

	"github.com/foodiesbnb/foodiesbnb-api/internal/application/dto"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"
	domfoodie "github.com/foodiesbnb/foodiesbnb-api/internal/domain/foodie"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/repository"
)

// RolUpdater es el contrato mínimo que este caso de uso necesita del servicio
// de auth. El uso de interfaz evita acoplar los paquetes de aplicación entre sí.
type RolUpdater interface {
	UpdateRol(userID, rol string) (*dto.AuthResponse, error)
}

// UseCase procesa solicitudes al programa foodie: evalúa las métricas del
// aplicante y, si corresponde, promueve el rol vía el servicio de auth.
type UseCase struct {
	solicitudRepo repository.SolicitudRepository
	roles         RolUpdater
}

// NewUseCase construye el caso de uso de solicitudes foodie.
func NewUseCase(solicitudRepo repository.SolicitudRepository, roles RolUpdater) *UseCase {
	return &UseCase{solicitudRepo: solicitudRepo, roles: roles}
}

// Apply registra la solicitud y aplica la regla de promoción.
//
// El orden importa: primero se evalúa, luego se intenta la mutación de rol y
// solo con la mutación confirmada se reporta la aprobación. Si el cambio de
// rol falla, el error del backend se propaga y el aplicante no recibe un
// "aprobado" que no se persistió.
func (uc *UseCase) Apply(userID string, in dto.SolicitudFoodieRequest) (*dto.SolicitudFoodieResponse, error) {
	decision := domfoodie.Evaluate(domfoodie.Metricas{
		SeguidoresInstagram: in.SeguidoresInstagram,
		SeguidoresTiktok:    in.SeguidoresTiktok,
		CuentaPublica:       in.CuentaPublica,
	})

	solicitud := &entity.SolicitudFoodie{
		ID:                  uuid.New().String(),
		UserID:              userID,
		NombreCompleto:      in.NombreCompleto,
		Email:               in.Email,
		NumeroPersonal:      in.NumeroPersonal,
		FechaNacimiento:     in.FechaNacimiento,
		Genero:              in.Genero,
		PaisDondeVives:      in.PaisDondeVives,
		CiudadDondeVives:    in.CiudadDondeVives,
		NivelContenido:      in.NivelContenido,
		UsuarioInstagram:    in.UsuarioInstagram,
		SeguidoresInstagram: in.SeguidoresInstagram,
		CuentaPublica:       in.CuentaPublica,
		UsuarioTiktok:       in.UsuarioTiktok,
		SeguidoresTiktok:    in.SeguidoresTiktok,
		SobreTi:             in.SobreTi,
		AceptaBeneficios:    in.AceptaBeneficios,
		AceptaTerminos:      in.AceptaTerminos,
		Estado:              entity.SolicitudRevision,
		CreatedAt:           time.Now(),
	}

	if decision == domfoodie.RevisionManual {
		if err := uc.solicitudRepo.Create(solicitud); err != nil {
			return nil, err
		}
		return &dto.SolicitudFoodieResponse{
			Success: true,
			Message: "Solicitud recibida. Será revisada manualmente; te contactaremos pronto.",
			Estado:  entity.SolicitudRevision,
		}, nil
	}

	out, err := uc.roles.UpdateRol(userID, entity.RolFoodie)
	if err != nil {
		return nil, err
	}

	solicitud.Estado = entity.SolicitudAprobada
	if err := uc.solicitudRepo.Create(solicitud); err != nil {
		return nil, err
	}
	return &dto.SolicitudFoodieResponse{
		Success: true,
		Message: "¡Felicidades! Tu cuenta foodie fue aprobada automáticamente.",
		Estado:  entity.SolicitudAprobada,
		Usuario: out.Usuario,
	}, nil
}

// ListMine devuelve el historial de solicitudes del usuario autenticado,
// de la más reciente a la más antigua.
func (uc *UseCase) ListMine(userID string) (*dto.SolicitudListResponse, error) {
	solicitudes, err := uc.solicitudRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := &dto.SolicitudListResponse{Success: true, Solicitudes: make([]dto.SolicitudView, 0, len(solicitudes))}
	for _, s := range solicitudes {
		out.Solicitudes = append(out.Solicitudes, dto.SolicitudView{
			ID:                  s.ID,
			Estado:              s.Estado,
			NivelContenido:      s.NivelContenido,
			UsuarioInstagram:    s.UsuarioInstagram,
			SeguidoresInstagram: s.SeguidoresInstagram,
			UsuarioTiktok:       s.UsuarioTiktok,
			SeguidoresTiktok:    s.SeguidoresTiktok,
			CuentaPublica:       s.CuentaPublica,
			CreatedAt:           s.CreatedAt,
		})
	}
	return out, nil
}

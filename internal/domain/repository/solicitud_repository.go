package repository

import "github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"

// SolicitudRepository puerto de persistencia de solicitudes foodie.
type SolicitudRepository interface {
	Create(solicitud *entity.SolicitudFoodie) error
	ListByUser(userID string) ([]*entity.SolicitudFoodie, error)
}

package postgres

import (
	"context"

	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/repository"
)

// SolicitudRepository implementación PostgreSQL del puerto de solicitudes foodie.
type SolicitudRepository struct {
	db dbtx
}

// NewSolicitudRepository crea el repositorio de solicitudes.
func NewSolicitudRepository(db dbtx) repository.SolicitudRepository {
	return &SolicitudRepository{db: db}
}

func (r *SolicitudRepository) Create(solicitud *entity.SolicitudFoodie) error {
	query := `
		INSERT INTO solicitudes_foodie (
			id, user_id, nombre_completo, email, numero_personal, fecha_nacimiento,
			genero, pais_donde_vives, ciudad_donde_vives, nivel_contenido,
			usuario_instagram, seguidores_instagram, cuenta_publica,
			usuario_tiktok, seguidores_tiktok, sobre_ti,
			acepta_beneficios, acepta_terminos, estado, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := r.db.Exec(context.Background(), query,
		solicitud.ID, solicitud.UserID, solicitud.NombreCompleto, solicitud.Email,
		solicitud.NumeroPersonal, solicitud.FechaNacimiento, solicitud.Genero,
		solicitud.PaisDondeVives, solicitud.CiudadDondeVives, solicitud.NivelContenido,
		solicitud.UsuarioInstagram, solicitud.SeguidoresInstagram, solicitud.CuentaPublica,
		solicitud.UsuarioTiktok, solicitud.SeguidoresTiktok, solicitud.SobreTi,
		solicitud.AceptaBeneficios, solicitud.AceptaTerminos, solicitud.Estado,
		solicitud.CreatedAt,
	)
	return err
}

func (r *SolicitudRepository) ListByUser(userID string) ([]*entity.SolicitudFoodie, error) {
	query := `
		SELECT id, user_id, nombre_completo, email, numero_personal, fecha_nacimiento,
			genero, pais_donde_vives, ciudad_donde_vives, nivel_contenido,
			usuario_instagram, seguidores_instagram, cuenta_publica,
			usuario_tiktok, seguidores_tiktok, sobre_ti,
			acepta_beneficios, acepta_terminos, estado, created_at
		FROM solicitudes_foodie
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(context.Background(), query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.SolicitudFoodie
	for rows.Next() {
		var s entity.SolicitudFoodie
		err := rows.Scan(
			&s.ID, &s.UserID, &s.NombreCompleto, &s.Email,
			&s.NumeroPersonal, &s.FechaNacimiento, &s.Genero,
			&s.PaisDondeVives, &s.CiudadDondeVives, &s.NivelContenido,
			&s.UsuarioInstagram, &s.SeguidoresInstagram, &s.CuentaPublica,
			&s.UsuarioTiktok, &s.SeguidoresTiktok, &s.SobreTi,
			&s.AceptaBeneficios, &s.AceptaTerminos, &s.Estado, &s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/foodiesbnb/foodiesbnb-api/internal/domain"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/repository"
)

const visitColumns = `
	id, user_id,
	restaurante_id, restaurante_nombre, restaurante_ubicacion, restaurante_tipo,
	restaurante_imagen, restaurante_descripcion, restaurante_horario, restaurante_beneficios,
	fecha, hora, numero_personas, notas_especiales, estado, codigo_reserva,
	created_at, updated_at`

// VisitRepository implementación PostgreSQL del puerto de visitas.
//
// fecha y hora se guardan como TEXT (YYYY-MM-DD / HH:MM) para que el orden
// lexicográfico coincida con el cronológico y los valores vuelvan tal cual
// se recibieron.
type VisitRepository struct {
	db dbtx
}

// NewVisitRepository crea el repositorio de visitas.
func NewVisitRepository(db dbtx) repository.VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) Create(visita *entity.Visita) error {
	query := `
		INSERT INTO visitas (` + visitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.Exec(context.Background(), query,
		visita.ID, visita.UserID,
		visita.Restaurante.ID, visita.Restaurante.Nombre, visita.Restaurante.Ubicacion,
		visita.Restaurante.Tipo, visita.Restaurante.Imagen, visita.Restaurante.Descripcion,
		visita.Restaurante.Horario, visita.Restaurante.Beneficios,
		visita.Fecha, visita.Hora, visita.NumeroPersonas, visita.NotasEspeciales,
		visita.Estado, visita.CodigoReserva,
		visita.CreatedAt, visita.UpdatedAt,
	)
	if err != nil && isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *VisitRepository) FindByID(id string) (*entity.Visita, error) {
	query := `SELECT ` + visitColumns + ` FROM visitas WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id))
}

func (r *VisitRepository) FindByIDAndUser(id, userID string) (*entity.Visita, error) {
	query := `SELECT ` + visitColumns + ` FROM visitas WHERE id = $1 AND user_id = $2`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id, userID))
}

func (r *VisitRepository) ListByUser(userID string) ([]*entity.Visita, error) {
	query := `
		SELECT ` + visitColumns + `
		FROM visitas
		WHERE user_id = $1
		ORDER BY fecha, hora, created_at`

	rows, err := r.db.Query(context.Background(), query, userID)
	if err != nil {
		return nil, err
	}
	return r.scanAll(rows)
}

func (r *VisitRepository) ListByUserAndEstado(userID, estado string) ([]*entity.Visita, error) {
	query := `
		SELECT ` + visitColumns + `
		FROM visitas
		WHERE user_id = $1 AND estado = $2
		ORDER BY fecha, hora, created_at`

	rows, err := r.db.Query(context.Background(), query, userID, estado)
	if err != nil {
		return nil, err
	}
	return r.scanAll(rows)
}

func (r *VisitRepository) Cancel(id, userID string) error {
	query := `
		UPDATE visitas
		SET estado = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND estado = $4`

	tag, err := r.db.Exec(context.Background(), query,
		id, userID, entity.EstadoCancelada, entity.EstadoProgramada)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(id, userID)
	}
	return nil
}

func (r *VisitRepository) UpdateDetails(visita *entity.Visita) error {
	query := `
		UPDATE visitas
		SET fecha = $3, hora = $4, numero_personas = $5, notas_especiales = $6, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND estado = $7`

	tag, err := r.db.Exec(context.Background(), query,
		visita.ID, visita.UserID,
		visita.Fecha, visita.Hora, visita.NumeroPersonas, visita.NotasEspeciales,
		entity.EstadoProgramada)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(visita.ID, visita.UserID)
	}
	return nil
}

func (r *VisitRepository) Complete(id string) error {
	query := `
		UPDATE visitas
		SET estado = $2, updated_at = now()
		WHERE id = $1 AND estado = $3`

	tag, err := r.db.Exec(context.Background(), query,
		id, entity.EstadoCompletada, entity.EstadoProgramada)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		existing, err := r.FindByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrVisitNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

// classifyMiss distingue, tras un update condicional sin filas afectadas,
// entre visita inexistente para ese dueño y transición inválida.
func (r *VisitRepository) classifyMiss(id, userID string) error {
	existing, err := r.FindByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrVisitNotFound
	}
	return domain.ErrInvalidTransition
}

func (r *VisitRepository) scanOne(row pgx.Row) (*entity.Visita, error) {
	v, err := scanVisita(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

func (r *VisitRepository) scanAll(rows pgx.Rows) ([]*entity.Visita, error) {
	defer rows.Close()

	var out []*entity.Visita
	for rows.Next() {
		v, err := scanVisita(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanVisita(row pgx.Row) (*entity.Visita, error) {
	var v entity.Visita
	err := row.Scan(
		&v.ID, &v.UserID,
		&v.Restaurante.ID, &v.Restaurante.Nombre, &v.Restaurante.Ubicacion,
		&v.Restaurante.Tipo, &v.Restaurante.Imagen, &v.Restaurante.Descripcion,
		&v.Restaurante.Horario, &v.Restaurante.Beneficios,
		&v.Fecha, &v.Hora, &v.NumeroPersonas, &v.NotasEspeciales,
		&v.Estado, &v.CodigoReserva,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

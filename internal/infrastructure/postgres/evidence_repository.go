package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/foodiesbnb/foodiesbnb-api/internal/domain"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/repository"
)

// EvidenceRepository implementación PostgreSQL del puerto de evidencias.
type EvidenceRepository struct {
	db dbtx
}

// NewEvidenceRepository crea el repositorio de evidencias.
func NewEvidenceRepository(db dbtx) repository.EvidenceRepository {
	return &EvidenceRepository{db: db}
}

func (r *EvidenceRepository) Create(evidencia *entity.Evidencia) error {
	query := `
		INSERT INTO evidencias (id, visita_id, link, foto, monto, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(context.Background(), query,
		evidencia.ID, evidencia.VisitaID, evidencia.Link, evidencia.Foto,
		evidencia.Monto, evidencia.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *EvidenceRepository) FindByVisita(visitaID string) (*entity.Evidencia, error) {
	query := `
		SELECT id, visita_id, link, foto, monto, created_at
		FROM evidencias
		WHERE visita_id = $1`

	var e entity.Evidencia
	err := r.db.QueryRow(context.Background(), query, visitaID).Scan(
		&e.ID, &e.VisitaID, &e.Link, &e.Foto, &e.Monto, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

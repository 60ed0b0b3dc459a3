package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/repository"
)

// EvidenceTxRunner ejecuta el registro de evidencia dentro de una transacción
// PostgreSQL: la lectura de la visita y el insert de la evidencia comparten
// la misma tx, así dos envíos simultáneos no registran evidencia doble.
type EvidenceTxRunner struct {
	pool *pgxpool.Pool
}

// NewEvidenceTxRunner crea el runner transaccional sobre el pool.
func NewEvidenceTxRunner(pool *pgxpool.Pool) *EvidenceTxRunner {
	return &EvidenceTxRunner{pool: pool}
}

// RunEvidence abre una transacción, entrega repos ligados a ella y hace
// commit solo si el callback termina sin error.
func (t *EvidenceTxRunner) RunEvidence(ctx context.Context, fn func(
	visits repository.VisitRepository,
	evidences repository.EvidenceRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewVisitRepository(tx), NewEvidenceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

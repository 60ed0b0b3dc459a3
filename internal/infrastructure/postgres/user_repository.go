package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/foodiesbnb/foodiesbnb-api/internal/domain"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/repository"
)

// UserRepository implementación PostgreSQL del puerto de usuarios.
type UserRepository struct {
	db dbtx
}

// NewUserRepository crea el repositorio de usuarios sobre el pool.
func NewUserRepository(db dbtx) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nombre_completo, email, password_hash, rol, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.NombreCompleto, user.Email, user.PasswordHash,
		user.Rol, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre_completo, email, password_hash, rol, created_at, updated_at
		FROM usuarios
		WHERE lower(email) = lower($1)`

	return r.scanOne(r.db.QueryRow(context.Background(), query, strings.TrimSpace(email)))
}

func (r *UserRepository) FindByID(id string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre_completo, email, password_hash, rol, created_at, updated_at
		FROM usuarios
		WHERE id = $1`

	return r.scanOne(r.db.QueryRow(context.Background(), query, id))
}

func (r *UserRepository) UpdateRol(id, rol string) (*entity.Usuario, error) {
	query := `
		UPDATE usuarios
		SET rol = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, nombre_completo, email, password_hash, rol, created_at, updated_at`

	return r.scanOne(r.db.QueryRow(context.Background(), query, id, rol))
}

func (r *UserRepository) scanOne(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.NombreCompleto, &u.Email, &u.PasswordHash,
		&u.Rol, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

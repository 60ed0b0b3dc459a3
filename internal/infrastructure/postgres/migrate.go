package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea el esquema si no existe. Se ejecuta en el arranque; todas las
// sentencias son idempotentes.
//
// Índices relevantes para los invariantes del dominio:
//   - usuarios: único sobre lower(email) — unicidad case-insensitive.
//   - visitas: único sobre codigo_reserva; (user_id, estado) para listados.
//   - evidencias: único sobre visita_id — una evidencia por visita.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS usuarios (
			id              UUID PRIMARY KEY,
			nombre_completo TEXT NOT NULL,
			email           TEXT NOT NULL,
			password_hash   TEXT NOT NULL,
			rol             TEXT NOT NULL DEFAULT 'usuario',
			created_at      TIMESTAMPTZ NOT NULL,
			updated_at      TIMESTAMPTZ NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS usuarios_email_unique
			ON usuarios (lower(email))`,

		`CREATE TABLE IF NOT EXISTS visitas (
			id                      UUID PRIMARY KEY,
			user_id                 UUID NOT NULL REFERENCES usuarios(id),
			restaurante_id          TEXT NOT NULL,
			restaurante_nombre      TEXT NOT NULL,
			restaurante_ubicacion   TEXT NOT NULL,
			restaurante_tipo        TEXT NOT NULL,
			restaurante_imagen      TEXT NOT NULL DEFAULT '',
			restaurante_descripcion TEXT NOT NULL DEFAULT '',
			restaurante_horario     TEXT NOT NULL DEFAULT '',
			restaurante_beneficios  TEXT[] NOT NULL DEFAULT '{}',
			fecha                   TEXT NOT NULL,
			hora                    TEXT NOT NULL,
			numero_personas         INT NOT NULL,
			notas_especiales        TEXT NOT NULL DEFAULT '',
			estado                  TEXT NOT NULL,
			codigo_reserva          TEXT NOT NULL,
			created_at              TIMESTAMPTZ NOT NULL,
			updated_at              TIMESTAMPTZ NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS visitas_codigo_reserva_unique
			ON visitas (codigo_reserva)`,
		`CREATE INDEX IF NOT EXISTS visitas_user_estado_idx
			ON visitas (user_id, estado)`,

		`CREATE TABLE IF NOT EXISTS evidencias (
			id         UUID PRIMARY KEY,
			visita_id  UUID NOT NULL UNIQUE REFERENCES visitas(id),
			link       TEXT NOT NULL,
			foto       TEXT NOT NULL,
			monto      NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS solicitudes_foodie (
			id                   UUID PRIMARY KEY,
			user_id              UUID NOT NULL REFERENCES usuarios(id),
			nombre_completo      TEXT NOT NULL,
			email                TEXT NOT NULL,
			numero_personal      TEXT NOT NULL,
			fecha_nacimiento     TEXT NOT NULL,
			genero               TEXT NOT NULL,
			pais_donde_vives     TEXT NOT NULL,
			ciudad_donde_vives   TEXT NOT NULL,
			nivel_contenido      TEXT NOT NULL,
			usuario_instagram    TEXT NOT NULL,
			seguidores_instagram INT NOT NULL,
			cuenta_publica       BOOLEAN NOT NULL,
			usuario_tiktok       TEXT NOT NULL,
			seguidores_tiktok    INT NOT NULL,
			sobre_ti             TEXT NOT NULL,
			acepta_beneficios    TEXT NOT NULL,
			acepta_terminos      BOOLEAN NOT NULL,
			estado               TEXT NOT NULL,
			created_at           TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
	"github.com/jhoicas/Romaneio-api/internal/domain/repository"
)

var _ repository.ScaleReadingRepository = (*ScaleReadingRepo)(nil)

// Los pesos quedan en NUMERIC sin escala fija: se devuelven con la misma precisión con que se guardaron.
const scaleReadingsSchema = `
CREATE TABLE IF NOT EXISTS scale_readings (
    manifest_id    TEXT PRIMARY KEY,
    seq            BIGSERIAL,
    gross_weight   NUMERIC NOT NULL,
    tare_weight    NUMERIC NOT NULL,
    net_weight     NUMERIC NOT NULL,
    divergence_pct NUMERIC NOT NULL,
    measured_at    TIMESTAMPTZ NOT NULL,
    operator_name  TEXT NOT NULL DEFAULT '',
    status         TEXT NOT NULL,
    note           TEXT NOT NULL DEFAULT ''
)`

const scaleReadingColumns = `manifest_id, gross_weight, tare_weight, net_weight, divergence_pct,
	measured_at, operator_name, status, note`

// ScaleReadingRepo pesajes en una tabla relacional, para estaciones con servidor PostgreSQL.
type ScaleReadingRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewScaleReadingRepository aplica el esquema y construye el repositorio.
func NewScaleReadingRepository(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) (*ScaleReadingRepo, error) {
	if _, err := pool.Exec(ctx, scaleReadingsSchema); err != nil {
		return nil, fmt.Errorf("migrar scale_readings: %w", err)
	}
	return &ScaleReadingRepo{pool: pool, log: log}, nil
}

// Upsert inserta o reemplaza el pesaje; conserva la posición original en List.
func (r *ScaleReadingRepo) Upsert(ctx context.Context, s *entity.ScaleReading) error {
	query := `
		INSERT INTO scale_readings (` + scaleReadingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (manifest_id) DO UPDATE SET
			gross_weight = EXCLUDED.gross_weight,
			tare_weight = EXCLUDED.tare_weight,
			net_weight = EXCLUDED.net_weight,
			divergence_pct = EXCLUDED.divergence_pct,
			measured_at = EXCLUDED.measured_at,
			operator_name = EXCLUDED.operator_name,
			status = EXCLUDED.status,
			note = EXCLUDED.note`
	_, err := r.pool.Exec(ctx, query,
		s.ManifestID, s.GrossWeight, s.TareWeight, s.NetWeight, s.DivergencePct,
		s.MeasuredAt, s.OperatorName, string(s.Status), s.Note,
	)
	if err != nil {
		return domain.NewStorageError("write", "scale_readings", err)
	}
	return nil
}

// GetByManifestID devuelve el pesaje o nil si no existe.
func (r *ScaleReadingRepo) GetByManifestID(ctx context.Context, manifestID string) (*entity.ScaleReading, error) {
	query := `SELECT ` + scaleReadingColumns + ` FROM scale_readings WHERE manifest_id = $1`
	s, err := scanReading(r.pool.QueryRow(ctx, query, manifestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("read", "scale_readings", err)
	}
	return s, nil
}

// List devuelve los pesajes en orden de registro; un fallo de lectura se registra y da lista vacía.
func (r *ScaleReadingRepo) List(ctx context.Context) []entity.ScaleReading {
	rows, err := r.pool.Query(ctx, `SELECT `+scaleReadingColumns+` FROM scale_readings ORDER BY seq`)
	if err != nil {
		r.log.Error().Err(err).Msg("listar pesajes")
		return []entity.ScaleReading{}
	}
	defer rows.Close()

	list := []entity.ScaleReading{}
	for rows.Next() {
		s, err := scanReading(rows)
		if err != nil {
			r.log.Error().Err(err).Msg("scan pesaje")
			return []entity.ScaleReading{}
		}
		list = append(list, *s)
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("listar pesajes")
		return []entity.ScaleReading{}
	}
	return list
}

// Delete quita el pesaje del romaneio.
func (r *ScaleReadingRepo) Delete(ctx context.Context, manifestID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM scale_readings WHERE manifest_id = $1`, manifestID); err != nil {
		return domain.NewStorageError("delete", "scale_readings", err)
	}
	return nil
}

func scanReading(row pgx.Row) (*entity.ScaleReading, error) {
	var s entity.ScaleReading
	var status string
	err := row.Scan(
		&s.ManifestID, &s.GrossWeight, &s.TareWeight, &s.NetWeight, &s.DivergencePct,
		&s.MeasuredAt, &s.OperatorName, &status, &s.Note,
	)
	if err != nil {
		return nil, err
	}
	s.Status = entity.ReadingStatus(status)
	s.MeasuredAt = entity.Timestamp(s.MeasuredAt)
	return &s, nil
}

package repository

import (
	"context"

	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

// ScaleReadingRepository puerto de persistencia de pesajes (upsert por manifestId).
type ScaleReadingRepository interface {
	Upsert(ctx context.Context, reading *entity.ScaleReading) error
	GetByManifestID(ctx context.Context, manifestID string) (*entity.ScaleReading, error)
	List(ctx context.Context) []entity.ScaleReading
	// Delete quita el pesaje del romaneio; no falla si no existe.
	Delete(ctx context.Context, manifestID string) error
}

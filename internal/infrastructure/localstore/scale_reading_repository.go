package localstore

import (
	"context"

	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
	"github.com/jhoicas/Romaneio-api/internal/domain/repository"
)

var _ repository.ScaleReadingRepository = (*ScaleReadingRepository)(nil)

// ScaleReadingRepository pesajes sobre el blob scale_readings (clave: manifestId).
type ScaleReadingRepository struct {
	store *Store
}

// NewScaleReadingRepository construye el repositorio.
func NewScaleReadingRepository(store *Store) *ScaleReadingRepository {
	return &ScaleReadingRepository{store: store}
}

// Upsert inserta o reemplaza el pesaje del romaneio.
func (r *ScaleReadingRepository) Upsert(ctx context.Context, reading *entity.ScaleReading) error {
	return AppendOrUpsert(ctx, r.store, KeyScaleReadings, *reading, func(s entity.ScaleReading) string { return s.ManifestID })
}

// GetByManifestID devuelve el pesaje o nil si no existe.
func (r *ScaleReadingRepository) GetByManifestID(ctx context.Context, manifestID string) (*entity.ScaleReading, error) {
	for _, s := range r.List(ctx) {
		if s.ManifestID == manifestID {
			reading := s
			return &reading, nil
		}
	}
	return nil, nil
}

// List devuelve todos los pesajes.
func (r *ScaleReadingRepository) List(ctx context.Context) []entity.ScaleReading {
	return ReadAll[entity.ScaleReading](ctx, r.store, KeyScaleReadings)
}

// Delete quita el pesaje del romaneio.
func (r *ScaleReadingRepository) Delete(ctx context.Context, manifestID string) error {
	return UpdateBlob(ctx, r.store, KeyScaleReadings, func(list *[]entity.ScaleReading) error {
		kept := (*list)[:0]
		for _, s := range *list {
			if s.ManifestID != manifestID {
				kept = append(kept, s)
			}
		}
		*list = kept
		return nil
	})
}

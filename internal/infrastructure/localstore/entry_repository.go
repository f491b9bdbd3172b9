package localstore

import (
	"context"

	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
	"github.com/jhoicas/Romaneio-api/internal/domain/repository"
)

var _ repository.ProductionEntryRepository = (*EntryRepository)(nil)

// EntryRepository apontamientos sobre el blob production_entries (clave: id).
type EntryRepository struct {
	store *Store
}

// NewEntryRepository construye el repositorio.
func NewEntryRepository(store *Store) *EntryRepository {
	return &EntryRepository{store: store}
}

// Append persiste un apontamiento.
func (r *EntryRepository) Append(ctx context.Context, entry *entity.ProductionEntry) error {
	return AppendOrUpsert(ctx, r.store, KeyProductionEntries, *entry, func(e entity.ProductionEntry) string { return e.ID })
}

// List devuelve todos los apontamientos.
func (r *EntryRepository) List(ctx context.Context) []entity.ProductionEntry {
	return ReadAll[entity.ProductionEntry](ctx, r.store, KeyProductionEntries)
}

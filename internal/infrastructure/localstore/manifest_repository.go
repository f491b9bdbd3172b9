package localstore

import (
	"context"
	"time"

	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
	"github.com/jhoicas/Romaneio-api/internal/domain/repository"
)

var _ repository.ManifestRepository = (*ManifestRepository)(nil)

// ManifestRepository romaneios sobre el blob manifest_storage
// ({fiscalManifests, completedManifests, lastSync}).
type ManifestRepository struct {
	store *Store
	now   func() time.Time
}

// NewManifestRepository construye el repositorio.
func NewManifestRepository(store *Store) *ManifestRepository {
	return &ManifestRepository{store: store, now: time.Now}
}

// AddFiscal agrega un romaneio fiscal. Un ID ya usado en cualquiera de las dos etapas es conflicto.
func (r *ManifestRepository) AddFiscal(ctx context.Context, m *entity.Manifest) error {
	return UpdateBlob(ctx, r.store, KeyManifestStorage, func(st *entity.ManifestStorage) error {
		if indexFiscal(st, m.ID) >= 0 || indexCompleted(st, m.ID) >= 0 {
			return domain.ErrConflict
		}
		st.FiscalManifests = append(st.FiscalManifests, *m)
		st.LastSync = entity.Timestamp(r.now())
		return nil
	})
}

// SaveCompleted consume el fiscal del mismo ID e inserta o reemplaza el completo.
func (r *ManifestRepository) SaveCompleted(ctx context.Context, c *entity.CompletedManifest) error {
	return UpdateBlob(ctx, r.store, KeyManifestStorage, func(st *entity.ManifestStorage) error {
		if i := indexFiscal(st, c.ID); i >= 0 {
			st.FiscalManifests = append(st.FiscalManifests[:i], st.FiscalManifests[i+1:]...)
		}
		if i := indexCompleted(st, c.ID); i >= 0 {
			st.CompletedManifests[i] = *c
		} else {
			st.CompletedManifests = append(st.CompletedManifests, *c)
		}
		st.LastSync = entity.Timestamp(r.now())
		return nil
	})
}

// FindFiscal devuelve el romaneio fiscal o nil.
func (r *ManifestRepository) FindFiscal(ctx context.Context, id string) (*entity.Manifest, error) {
	st := r.load(ctx)
	if i := indexFiscal(&st, id); i >= 0 {
		m := st.FiscalManifests[i]
		return &m, nil
	}
	return nil, nil
}

// FindCompleted devuelve el romaneio completo o nil.
func (r *ManifestRepository) FindCompleted(ctx context.Context, id string) (*entity.CompletedManifest, error) {
	st := r.load(ctx)
	if i := indexCompleted(&st, id); i >= 0 {
		c := st.CompletedManifests[i]
		return &c, nil
	}
	return nil, nil
}

// FindByID busca en la etapa fiscal y luego en la completa.
func (r *ManifestRepository) FindByID(ctx context.Context, id string) (entity.ManifestRecord, error) {
	st := r.load(ctx)
	if i := indexFiscal(&st, id); i >= 0 {
		m := st.FiscalManifests[i]
		return &m, nil
	}
	if i := indexCompleted(&st, id); i >= 0 {
		c := st.CompletedManifests[i]
		return &c, nil
	}
	return nil, nil
}

// ListFiscal devuelve los romaneios fiscales pendientes de completar.
func (r *ManifestRepository) ListFiscal(ctx context.Context) []entity.Manifest {
	st := r.load(ctx)
	if st.FiscalManifests == nil {
		return []entity.Manifest{}
	}
	return st.FiscalManifests
}

// ListCompleted devuelve los romaneios completos.
func (r *ManifestRepository) ListCompleted(ctx context.Context) []entity.CompletedManifest {
	st := r.load(ctx)
	if st.CompletedManifests == nil {
		return []entity.CompletedManifest{}
	}
	return st.CompletedManifests
}

func (r *ManifestRepository) load(ctx context.Context) entity.ManifestStorage {
	st, _ := ReadBlob[entity.ManifestStorage](ctx, r.store, KeyManifestStorage)
	return st
}

func indexFiscal(st *entity.ManifestStorage, id string) int {
	for i := range st.FiscalManifests {
		if st.FiscalManifests[i].ID == id {
			return i
		}
	}
	return -1
}

func indexCompleted(st *entity.ManifestStorage, id string) int {
	for i := range st.CompletedManifests {
		if st.CompletedManifests[i].ID == id {
			return i
		}
	}
	return -1
}

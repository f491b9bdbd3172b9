package repository

import (
	"context"

	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

// ManifestRepository puerto de persistencia de romaneios en sus dos etapas (fiscal y completo).
// Las dos listas son disjuntas por ID.
type ManifestRepository interface {
	AddFiscal(ctx context.Context, m *entity.Manifest) error
	// SaveCompleted elimina el fiscal con el mismo ID (si existe) e inserta o reemplaza el completo
	// en una sola escritura.
	SaveCompleted(ctx context.Context, c *entity.CompletedManifest) error
	FindFiscal(ctx context.Context, id string) (*entity.Manifest, error)
	FindCompleted(ctx context.Context, id string) (*entity.CompletedManifest, error)
	// FindByID busca primero en la etapa fiscal y luego en la completa. (nil, nil) si no existe.
	FindByID(ctx context.Context, id string) (entity.ManifestRecord, error)
	ListFiscal(ctx context.Context) []entity.Manifest
	ListCompleted(ctx context.Context) []entity.CompletedManifest
}

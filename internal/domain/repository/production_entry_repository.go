package repository

import (
	"context"

	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

// ProductionEntryRepository puerto de persistencia de apontamientos (solo anexar).
type ProductionEntryRepository interface {
	Append(ctx context.Context, entry *entity.ProductionEntry) error
	// List devuelve todos los apontamientos en orden de inserción; vacío si no hay datos legibles.
	List(ctx context.Context) []entity.ProductionEntry
}

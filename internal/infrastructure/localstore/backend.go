// Package localstore implementa el almacén clave-valor local del dispositivo: tres blobs JSON
// (apontamientos, romaneios y pesajes) sobre un Backend intercambiable (badger, sqlite o postgres).
package localstore

import "context"

// Claves de los blobs persistidos.
const (
	KeyProductionEntries = "production_entries"
	KeyManifestStorage   = "manifest_storage"
	KeyScaleReadings     = "scale_readings"
)

// Backend contrato mínimo de persistencia de blobs por clave.
type Backend interface {
	// Get devuelve el blob o nil si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	// Update lee el valor actual (nil si no existe), aplica fn y escribe el resultado
	// de forma atómica. Si fn falla no se escribe nada.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
	Close() error
}

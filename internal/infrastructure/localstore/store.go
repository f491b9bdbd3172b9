package localstore

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Romaneio-api/internal/domain"
)

// Store handle explícito del almacén local; se crea una vez al iniciar y se inyecta en los repositorios.
type Store struct {
	backend Backend
	log     zerolog.Logger
}

// New construye el Store sobre un backend ya abierto.
func New(backend Backend, log zerolog.Logger) *Store {
	return &Store{backend: backend, log: log.With().Str("component", "localstore").Logger()}
}

// Close libera el backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// ReadBlob decodifica el blob de key. Nunca falla: si falta devuelve el valor cero y false;
// si está corrupto o el backend falla, se registra y se trata como vacío.
func ReadBlob[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var v T
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("lectura fallida, se asume vacío")
		return v, false
	}
	if len(raw) == 0 {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("blob corrupto, se asume vacío")
		var zero T
		return zero, false
	}
	return v, true
}

// ReadAll devuelve todos los registros de la colección en orden de inserción (nunca nil).
func ReadAll[T any](ctx context.Context, s *Store, key string) []T {
	list, _ := ReadBlob[[]T](ctx, s, key)
	if list == nil {
		return []T{}
	}
	return list
}

// UpdateBlob aplica fn sobre el blob decodificado y lo reescribe en una sola operación.
// Un error de fn se devuelve tal cual y no escribe nada; los fallos del backend
// se devuelven como *domain.StorageError.
func UpdateBlob[T any](ctx context.Context, s *Store, key string, fn func(v *T) error) error {
	var fnErr error
	err := s.backend.Update(ctx, key, func(current []byte) ([]byte, error) {
		var v T
		if len(current) > 0 {
			if err := json.Unmarshal(current, &v); err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("blob corrupto, se reescribe desde vacío")
				var zero T
				v = zero
			}
		}
		if err := fn(&v); err != nil {
			fnErr = err
			return nil, err
		}
		return json.Marshal(v)
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("escritura fallida")
		return domain.NewStorageError("write", key, err)
	}
	return nil
}

// AppendOrUpsert reemplaza en su posición el registro con la misma clave o lo agrega al final.
func AppendOrUpsert[T any](ctx context.Context, s *Store, key string, rec T, keyFn func(T) string) error {
	id := keyFn(rec)
	if id == "" {
		return domain.NewValidationError("key", "el registro no tiene clave")
	}
	return UpdateBlob(ctx, s, key, func(list *[]T) error {
		for i := range *list {
			if keyFn((*list)[i]) == id {
				(*list)[i] = rec
				return nil
			}
		}
		*list = append(*list, rec)
		return nil
	})
}

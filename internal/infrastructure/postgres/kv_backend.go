package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Romaneio-api/internal/infrastructure/localstore"
)

var _ localstore.Backend = (*KVBackend)(nil)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv_blobs (
    key        TEXT PRIMARY KEY,
    value      BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// KVBackend guarda los blobs del almacén local en una tabla PostgreSQL (estaciones con servidor propio).
type KVBackend struct {
	pool *pgxpool.Pool
}

// NewKVBackend aplica el esquema y devuelve el backend. El pool pasa a ser propiedad del backend.
func NewKVBackend(ctx context.Context, pool *pgxpool.Pool) (*KVBackend, error) {
	if _, err := pool.Exec(ctx, kvSchema); err != nil {
		return nil, fmt.Errorf("migrar kv_blobs: %w", err)
	}
	return &KVBackend{pool: pool}, nil
}

// Get implementa localstore.Backend.
func (b *KVBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.pool.QueryRow(ctx, `SELECT value FROM kv_blobs WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres get %s: %w", key, err)
	}
	return value, nil
}

// Update implementa localstore.Backend: SELECT ... FOR UPDATE bloquea la fila existente;
// si dos escritores crean la clave a la vez, el perdedor reintenta una vez.
func (b *KVBackend) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	err := b.update(ctx, key, fn)
	if err != nil && isUniqueViolation(err) {
		err = b.update(ctx, key, fn)
	}
	return err
}

func (b *KVBackend) update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current []byte
	exists := true
	err = tx.QueryRow(ctx, `SELECT value FROM kv_blobs WHERE key = $1 FOR UPDATE`, key).Scan(&current)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("postgres leer %s: %w", key, err)
		}
		exists = false
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	if exists {
		_, err = tx.Exec(ctx, `UPDATE kv_blobs SET value = $2, updated_at = now() WHERE key = $1`, key, next)
	} else {
		_, err = tx.Exec(ctx, `INSERT INTO kv_blobs (key, value) VALUES ($1, $2)`, key, next)
	}
	if err != nil {
		return fmt.Errorf("postgres escribir %s: %w", key, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close cierra el pool.
func (b *KVBackend) Close() error {
	b.pool.Close()
	return nil
}

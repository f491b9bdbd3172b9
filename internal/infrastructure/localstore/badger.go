package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

var _ Backend = (*BadgerBackend)(nil)

// BadgerBackend backend por defecto: base clave-valor embebida en un directorio local.
type BadgerBackend struct {
	db *badger.DB
}

// OpenBadger abre (o crea) la base en dir. Con dir vacío la base vive solo en memoria (tests).
func OpenBadger(dir string, log zerolog.Logger) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(badgerLogger{log: log.With().Str("component", "badger").Logger()})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("abrir badger: %w", err)
	}
	return &BadgerBackend{db: db}, nil
}

// Get implementa Backend.
func (b *BadgerBackend) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("badger get %s: %w", key, err)
	}
	return out, nil
}

// Update implementa Backend dentro de una transacción de lectura-escritura de badger.
func (b *BadgerBackend) Update(_ context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	return b.db.Update(func(txn *badger.Txn) error {
		var current []byte
		item, err := txn.Get([]byte(key))
		switch {
		case err == nil:
			if current, err = item.ValueCopy(nil); err != nil {
				return err
			}
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		return txn.Set([]byte(key), next)
	})
}

// Close cierra la base.
func (b *BadgerBackend) Close() error {
	return b.db.Close()
}

// badgerLogger adapta zerolog a la interfaz badger.Logger.
type badgerLogger struct {
	log zerolog.Logger
}

func (l badgerLogger) Errorf(f string, v ...interface{})   { l.log.Error().Msgf(f, v...) }
func (l badgerLogger) Warningf(f string, v ...interface{}) { l.log.Warn().Msgf(f, v...) }
func (l badgerLogger) Infof(f string, v ...interface{})    { l.log.Debug().Msgf(f, v...) }
func (l badgerLogger) Debugf(f string, v ...interface{})   { l.log.Trace().Msgf(f, v...) }

// Package bootstrap arma los casos de uso a partir de la configuración. Lo comparten
// el servidor HTTP y la CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/Romaneio-api/internal/application/ledger"
	"github.com/jhoicas/Romaneio-api/internal/application/manifest"
	"github.com/jhoicas/Romaneio-api/internal/application/reconciliation"
	"github.com/jhoicas/Romaneio-api/internal/domain/repository"
	"github.com/jhoicas/Romaneio-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/Romaneio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Romaneio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Romaneio-api/internal/infrastructure/qrcode"
	"github.com/jhoicas/Romaneio-api/internal/infrastructure/seed"
	"github.com/jhoicas/Romaneio-api/internal/infrastructure/waybill"
	"github.com/jhoicas/Romaneio-api/pkg/config"
	"github.com/jhoicas/Romaneio-api/pkg/logger"
)

// App casos de uso listos para usar más el almacén que hay que cerrar.
type App struct {
	Ledger    *ledger.UseCase
	Manifests *manifest.UseCase
	Scale     *reconciliation.UseCase
	Store     *localstore.Store
}

// Close cierra el almacén local.
func (a *App) Close() error {
	return a.Store.Close()
}

// Build abre el backend elegido en cfg.Store.Driver y construye los casos de uso.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	storage, err := OpenBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	store := localstore.New(storage.Backend, log.Component("localstore"))
	readings := storage.Readings
	if readings == nil {
		readings = localstore.NewScaleReadingRepository(store)
	}

	workers, err := seed.Load(cfg.Store.WorkersFile)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	manifestRepo := localstore.NewManifestRepository(store)
	ledgerUC := ledger.NewUseCase(
		localstore.NewEntryRepository(store), workers, cfg.Ledger.KgPerBox, log.Component("ledger"),
	)
	manifestUC := manifest.NewUseCase(
		manifestRepo,
		qrcode.NewEncoder(cfg.QR.Size),
		qrcode.PassthroughReader{},
		infrapdf.NewMarotoSlipGenerator(),
		waybill.NewExporter(),
		log.Component("manifest"),
	)
	scaleUC := reconciliation.NewUseCase(
		readings,
		manifestRepo,
		manifestUC,
		cfg.Scale.TolerancePct,
		log.Component("reconciliation"),
	)

	log.Info().
		Str("driver", cfg.Store.Driver).
		Str("path", cfg.Store.Path).
		Int("workers", len(workers.ListActive(""))).
		Msg("almacén local listo")

	return &App{Ledger: ledgerUC, Manifests: manifestUC, Scale: scaleUC, Store: store}, nil
}

// Storage backend clave-valor más, con PostgreSQL, la tabla relacional de pesajes.
type Storage struct {
	Backend  localstore.Backend
	Readings repository.ScaleReadingRepository // nil: los pesajes van al almacén clave-valor
}

// OpenBackend abre el backend configurado.
func OpenBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Storage, error) {
	switch cfg.Store.Driver {
	case config.StoreBadger:
		b, err := localstore.OpenBadger(cfg.Store.Path, log.Component("badger"))
		if err != nil {
			return nil, err
		}
		return &Storage{Backend: b}, nil
	case config.StoreSQLite:
		b, err := localstore.OpenSQLite(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		return &Storage{Backend: b}, nil
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		b, err := postgres.NewKVBackend(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		readings, err := postgres.NewScaleReadingRepository(ctx, pool, log.Component("postgres"))
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Storage{Backend: b, Readings: readings}, nil
	default:
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
	}
}

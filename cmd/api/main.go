package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/Romaneio-api/internal/bootstrap"
	httpRouter "github.com/jhoicas/Romaneio-api/internal/interfaces/http"
	"github.com/jhoicas/Romaneio-api/pkg/config"
	"github.com/jhoicas/Romaneio-api/pkg/logger"

	_ "github.com/jhoicas/Romaneio-api/docs"
)

// @title        Romaneio API
// @version      1.0
// @description  Libro de producción, romaneios con código QR y conciliación en báscula.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	deps, err := bootstrap.Build(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer func() {
		if err := deps.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar almacén local")
		}
	}()

	app := httpRouter.NewApp(cfg.App.Name, log.Component("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Romaneio API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:      deps.Ledger,
		Manifests:   deps.Manifests,
		Scale:       deps.Scale,
		ServiceName: cfg.App.Name,
		StoreDriver: cfg.Store.Driver,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

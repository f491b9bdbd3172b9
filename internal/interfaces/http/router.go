package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Romaneio-api/internal/application/dto"
	"github.com/jhoicas/Romaneio-api/internal/application/ledger"
	"github.com/jhoicas/Romaneio-api/internal/application/manifest"
	"github.com/jhoicas/Romaneio-api/internal/application/reconciliation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger      *ledger.UseCase
	Manifests   *manifest.UseCase
	Scale       *reconciliation.UseCase
	ServiceName string
	StoreDriver string
}

// NewApp crea la app Fiber con el manejador de errores y los middlewares comunes.
func NewApp(name string, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log))
	app.Use(OperatorMiddleware())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName, Store: deps.StoreDriver})
	})

	api := app.Group("/api")

	// Libro de producción
	productionHandler := NewProductionHandler(deps.Ledger)
	api.Get("/workers", productionHandler.Workers)
	production := api.Group("/production")
	production.Post("/entries", productionHandler.RecordEntry)
	production.Get("/consolidation", productionHandler.Consolidate)
	production.Get("/estimate", productionHandler.Estimate)
	production.Get("/reports/workers/:id", productionHandler.ReportByWorker)
	production.Get("/reports/sites", productionHandler.ReportBySite)

	// Romaneios
	manifestHandler := NewManifestHandler(deps.Manifests)
	manifests := api.Group("/manifests")
	manifests.Post("/", manifestHandler.Create)
	manifests.Get("/", manifestHandler.List)
	manifests.Post("/scan", manifestHandler.Scan)
	manifests.Post("/complete", manifestHandler.Complete)
	manifests.Get("/:id", manifestHandler.GetByID)
	manifests.Post("/:id/dispatch", manifestHandler.Dispatch)
	manifests.Get("/:id/qr", manifestHandler.QR)
	manifests.Get("/:id/payload", manifestHandler.Payload)
	manifests.Get("/:id/slip", manifestHandler.Slip)
	manifests.Get("/:id/waybill", manifestHandler.Waybill)

	// Báscula
	scaleHandler := NewScaleHandler(deps.Scale, deps.Manifests)
	scale := api.Group("/scale")
	scale.Post("/weighings", scaleHandler.ConfirmWeighing)
	scale.Get("/weighings", scaleHandler.List)
	scale.Get("/weighings/:manifestId", scaleHandler.GetByManifest)
}

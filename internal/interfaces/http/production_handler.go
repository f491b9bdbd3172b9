package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Romaneio-api/internal/application/dto"
	"github.com/jhoicas/Romaneio-api/internal/application/ledger"
)

// ProductionHandler maneja el libro de producción y el catálogo de colaboradores.
type ProductionHandler struct {
	uc *ledger.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *ledger.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Workers godoc
// @Summary      Listar colaboradores activos
// @Tags         workers
// @Produce      json
// @Param        site  query  string  false  "Finca"
// @Success      200   {object}  dto.WorkerListResponse
// @Router       /api/workers [get]
func (h *ProductionHandler) Workers(c *fiber.Ctx) error {
	return c.JSON(dto.WorkerListResponse{Items: h.uc.Workers(c.Query("site"))})
}

// RecordEntry godoc
// @Summary      Registrar apontamento
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordEntryRequest  true  "Cajas por colaborador"
// @Success      201   {object}  entity.ProductionEntry
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/production/entries [post]
func (h *ProductionHandler) RecordEntry(c *fiber.Ctx) error {
	var in dto.RecordEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	createdBy := in.CreatedBy
	if createdBy == "" {
		createdBy = GetOperator(c)
	}
	out, err := h.uc.RecordEntry(c.UserContext(), ledger.RecordEntryInput{
		WorkerID:  in.WorkerID,
		Site:      in.Site,
		Plot:      in.Plot,
		Date:      in.Date,
		BoxCount:  in.BoxCount,
		CreatedBy: createdBy,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Consolidate godoc
// @Summary      Consolidar cajas por parcela y día
// @Tags         production
// @Produce      json
// @Param        site  query  string  true  "Finca"
// @Param        plot  query  string  true  "Parcela"
// @Param        date  query  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {object}  entity.ConsolidatedPlot
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production/consolidation [get]
func (h *ProductionHandler) Consolidate(c *fiber.Ctx) error {
	site, plot, date := c.Query("site"), c.Query("plot"), c.Query("date")
	if site == "" || plot == "" || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "site, plot y date son requeridos"})
	}
	return c.JSON(h.uc.Consolidate(c.UserContext(), site, plot, date))
}

// Estimate godoc
// @Summary      Estimar cantidad declarada (kg) a partir de la consolidación
// @Tags         production
// @Produce      json
// @Param        site   query  string  true  "Finca"
// @Param        date   query  string  true  "Fecha YYYY-MM-DD"
// @Param        plots  query  string  true  "Parcelas separadas por coma"
// @Success      200    {object}  ledger.Estimate
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/production/estimate [get]
func (h *ProductionHandler) Estimate(c *fiber.Ctx) error {
	site, date := c.Query("site"), c.Query("date")
	plots := splitList(c.Query("plots"))
	if site == "" || date == "" || len(plots) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "site, date y plots son requeridos"})
	}
	return c.JSON(h.uc.EstimateDeclaredWeight(c.UserContext(), site, date, plots))
}

// ReportByWorker godoc
// @Summary      Reporte de producción por colaborador
// @Tags         production
// @Produce      json
// @Param        id     path   string  true   "ID del colaborador"
// @Param        start  query  string  false  "Desde YYYY-MM-DD (inclusivo)"
// @Param        end    query  string  false  "Hasta YYYY-MM-DD (inclusivo)"
// @Success      200    {object}  entity.WorkerReport
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/production/reports/workers/{id} [get]
func (h *ProductionHandler) ReportByWorker(c *fiber.Ctx) error {
	start, end, ok := dateRange(c)
	if !ok {
		return nil
	}
	return c.JSON(h.uc.ReportByWorker(c.UserContext(), c.Params("id"), start, end))
}

// ReportBySite godoc
// @Summary      Reporte de producción por finca
// @Tags         production
// @Produce      json
// @Param        site   query  string  true   "Finca"
// @Param        start  query  string  false  "Desde YYYY-MM-DD (inclusivo)"
// @Param        end    query  string  false  "Hasta YYYY-MM-DD (inclusivo)"
// @Success      200    {object}  entity.SiteReport
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/production/reports/sites [get]
func (h *ProductionHandler) ReportBySite(c *fiber.Ctx) error {
	site := c.Query("site")
	if site == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "site es requerido"})
	}
	start, end, ok := dateRange(c)
	if !ok {
		return nil
	}
	return c.JSON(h.uc.ReportBySite(c.UserContext(), site, start, end))
}

// dateRange lee start/end y exige formato canónico; si falla ya escribió la respuesta 400.
func dateRange(c *fiber.Ctx) (start, end string, ok bool) {
	start, end = c.Query("start"), c.Query("end")
	for _, d := range []string{start, end} {
		if d != "" && !ledger.IsCanonicalDate(d) {
			_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas en formato YYYY-MM-DD"})
			return "", "", false
		}
	}
	return start, end, true
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

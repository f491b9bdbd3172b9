// Package ledger implementa el libro de producción: apontamientos de cajas por colaborador
// y sus agregados por parcela/día, colaborador y finca.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
	"github.com/jhoicas/Romaneio-api/internal/domain/repository"
)

// DefaultKgPerBox peso estimado de una caja cosechada.
const DefaultKgPerBox = 25

// UseCase casos de uso del libro de producción.
type UseCase struct {
	entries  repository.ProductionEntryRepository
	workers  repository.WorkerRepository
	kgPerBox int
	log      zerolog.Logger

	now   func() time.Time
	newID func() string
}

// NewUseCase construye el caso de uso. kgPerBox <= 0 usa DefaultKgPerBox.
func NewUseCase(
	entries repository.ProductionEntryRepository,
	workers repository.WorkerRepository,
	kgPerBox int,
	log zerolog.Logger,
) *UseCase {
	if kgPerBox <= 0 {
		kgPerBox = DefaultKgPerBox
	}
	return &UseCase{
		entries:  entries,
		workers:  workers,
		kgPerBox: kgPerBox,
		log:      log,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// RecordEntryInput entrada para registrar un apontamiento.
type RecordEntryInput struct {
	WorkerID  string
	Site      string
	Plot      string
	Date      string // YYYY-MM-DD
	BoxCount  int
	CreatedBy string
}

// RecordEntry valida y anexa un apontamiento nuevo. No detecta duplicados:
// dos llamadas iguales crean dos apontamientos.
func (uc *UseCase) RecordEntry(ctx context.Context, in RecordEntryInput) (*entity.ProductionEntry, error) {
	in.WorkerID = strings.TrimSpace(in.WorkerID)
	in.Site = strings.TrimSpace(in.Site)
	in.Plot = strings.TrimSpace(in.Plot)
	in.Date = strings.TrimSpace(in.Date)

	if in.BoxCount <= 0 {
		return nil, domain.NewValidationError("boxCount", "debe ser mayor que cero")
	}
	switch {
	case in.WorkerID == "":
		return nil, domain.NewValidationError("workerId", "requerido")
	case in.Site == "":
		return nil, domain.NewValidationError("site", "requerido")
	case in.Plot == "":
		return nil, domain.NewValidationError("plot", "requerido")
	case in.Date == "":
		return nil, domain.NewValidationError("date", "requerido")
	}
	if !IsCanonicalDate(in.Date) {
		return nil, domain.NewValidationError("date", "formato esperado YYYY-MM-DD")
	}

	worker, ok := uc.workers.GetByID(in.WorkerID)
	if !ok {
		return nil, domain.NewValidationError("workerId", "colaborador desconocido")
	}
	if !worker.Active {
		return nil, domain.NewValidationError("workerId", "colaborador inactivo")
	}

	entry := &entity.ProductionEntry{
		ID:         uc.newID(),
		WorkerID:   worker.ID,
		WorkerName: worker.Name,
		Site:       in.Site,
		Plot:       in.Plot,
		BoxCount:   in.BoxCount,
		Date:       in.Date,
		CreatedBy:  strings.TrimSpace(in.CreatedBy),
		CreatedAt:  entity.Timestamp(uc.now()),
	}
	if err := uc.entries.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("registrar apontamento: %w", err)
	}

	uc.log.Info().
		Str("entry_id", entry.ID).
		Str("worker_id", entry.WorkerID).
		Str("site", entry.Site).
		Str("plot", entry.Plot).
		Int("boxes", entry.BoxCount).
		Msg("apontamento registrado")
	return entry, nil
}

// Consolidate agrega los apontamientos de (site, plot, date) exactos.
// Los subtotales por colaborador salen en orden de primera aparición.
func (uc *UseCase) Consolidate(ctx context.Context, site, plot, date string) entity.ConsolidatedPlot {
	out := entity.ConsolidatedPlot{Site: site, Plot: plot, Date: date, Workers: []entity.WorkerBoxes{}}
	index := make(map[string]int)
	for _, e := range uc.entries.List(ctx) {
		if e.Site != site || e.Plot != plot || e.Date != date {
			continue
		}
		i, seen := index[e.WorkerID]
		if !seen {
			i = len(out.Workers)
			index[e.WorkerID] = i
			out.Workers = append(out.Workers, entity.WorkerBoxes{WorkerID: e.WorkerID, WorkerName: e.WorkerName})
		}
		out.Workers[i].Boxes += e.BoxCount
		out.TotalBoxes += e.BoxCount
	}
	return out
}

// ReportByWorker resume la producción de un colaborador en [start, end] (inclusivo).
// DaysWorked es la cantidad de fechas distintas.
func (uc *UseCase) ReportByWorker(ctx context.Context, workerID, start, end string) entity.WorkerReport {
	rep := entity.WorkerReport{
		WorkerID:  workerID,
		DateStart: start,
		DateEnd:   end,
		Entries:   []entity.ProductionEntry{},
	}
	if w, ok := uc.workers.GetByID(workerID); ok {
		rep.Worker = w
	}
	days := make(map[string]struct{})
	for _, e := range uc.entries.List(ctx) {
		if e.WorkerID != workerID || !inRange(e.Date, start, end) {
			continue
		}
		rep.Entries = append(rep.Entries, e)
		rep.TotalBoxes += e.BoxCount
		days[e.Date] = struct{}{}
	}
	rep.DaysWorked = len(days)
	return rep
}

// ReportBySite resume la producción de una finca por parcela en [start, end].
func (uc *UseCase) ReportBySite(ctx context.Context, site, start, end string) entity.SiteReport {
	rep := entity.SiteReport{Site: site, DateStart: start, DateEnd: end, Plots: []entity.PlotBoxes{}}
	index := make(map[string]int)
	for _, e := range uc.entries.List(ctx) {
		if e.Site != site || !inRange(e.Date, start, end) {
			continue
		}
		i, seen := index[e.Plot]
		if !seen {
			i = len(rep.Plots)
			index[e.Plot] = i
			rep.Plots = append(rep.Plots, entity.PlotBoxes{Plot: e.Plot})
		}
		rep.Plots[i].Boxes += e.BoxCount
		rep.TotalBoxes += e.BoxCount
	}
	return rep
}

// Estimate cantidad declarada sugerida para un romaneio a partir de la consolidación.
type Estimate struct {
	Site     string          `json:"site"`
	Date     string          `json:"date"`
	Plots    []string        `json:"plots"`
	Boxes    int             `json:"boxes"`
	KgPerBox int             `json:"kgPerBox"`
	Kg       decimal.Decimal `json:"kg"`
}

// EstimateDeclaredWeight suma las cajas consolidadas de las parcelas (sin repetir) y las
// convierte a kg con el peso por caja configurado.
func (uc *UseCase) EstimateDeclaredWeight(ctx context.Context, site, date string, plots []string) Estimate {
	est := Estimate{Site: site, Date: date, Plots: []string{}, KgPerBox: uc.kgPerBox}
	seen := make(map[string]struct{}, len(plots))
	for _, p := range plots {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		est.Plots = append(est.Plots, p)
		est.Boxes += uc.Consolidate(ctx, site, p, date).TotalBoxes
	}
	est.Kg = decimal.NewFromInt(int64(est.Boxes)).Mul(decimal.NewFromInt(int64(uc.kgPerBox)))
	return est
}

// Workers colaboradores activos; site vacío = todas las fincas.
func (uc *UseCase) Workers(site string) []entity.Worker {
	return uc.workers.ListActive(strings.TrimSpace(site))
}

// IsCanonicalDate indica si s es una fecha de calendario válida en formato YYYY-MM-DD.
func IsCanonicalDate(s string) bool {
	t, err := time.Parse(entity.DateLayout, s)
	return err == nil && t.Format(entity.DateLayout) == s
}

// inRange compara fechas canónicas como strings; un extremo vacío no limita.
func inRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

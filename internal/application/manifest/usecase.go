// Package manifest implementa el ciclo de vida del romaneio: creación por el fiscal,
// complemento por el transportista, despacho y entrega en báscula, más la emisión
// y lectura del código QR que viaja entre dispositivos.
package manifest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Romaneio-api/internal/application/ports"
	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
	"github.com/jhoicas/Romaneio-api/internal/domain/repository"
	"github.com/jhoicas/Romaneio-api/internal/domain/romaneio"
	"github.com/jhoicas/Romaneio-api/pkg/carrier"
)

// UseCase casos de uso del romaneio.
type UseCase struct {
	manifests repository.ManifestRepository
	encoder   ports.CodeEncoder
	reader    ports.CodeReader
	slips     ports.SlipGenerator
	waybills  ports.WaybillExporter
	log       zerolog.Logger

	now   func() time.Time
	newID func() string
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	manifests repository.ManifestRepository,
	encoder ports.CodeEncoder,
	reader ports.CodeReader,
	slips ports.SlipGenerator,
	waybills ports.WaybillExporter,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		manifests: manifests,
		encoder:   encoder,
		reader:    reader,
		slips:     slips,
		waybills:  waybills,
		log:       log,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// ── Creación ──────────────────────────────────────────────────────────────────

// CreateInput datos del fiscal para un romaneio nuevo.
type CreateInput struct {
	Site             string
	Number           string
	Plots            []string
	DeclaredQuantity decimal.Decimal // kg
	Destination      string
	InspectorName    string
}

// Create valida y guarda un romaneio fiscal.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.Manifest, error) {
	site := strings.TrimSpace(in.Site)
	number := strings.TrimSpace(in.Number)
	destination := strings.TrimSpace(in.Destination)

	plots, err := validateHeader(site, number, destination, in.Plots, in.DeclaredQuantity)
	if err != nil {
		return nil, err
	}

	m := entity.NewManifest(uc.newID(), site, number, plots, in.DeclaredQuantity, destination,
		strings.TrimSpace(in.InspectorName), uc.now())
	if err := uc.manifests.AddFiscal(ctx, m); err != nil {
		return nil, fmt.Errorf("guardar romaneio: %w", err)
	}

	uc.log.Info().
		Str("manifest_id", m.ID).
		Str("number", m.ManifestNumber).
		Str("declared_kg", m.DeclaredQuantity.String()).
		Msg("romaneio creado")
	return m, nil
}

// validateHeader revisa los datos del fiscal y devuelve las parcelas normalizadas.
func validateHeader(site, number, destination string, in []string, declared decimal.Decimal) ([]string, error) {
	if len(in) == 0 {
		return nil, domain.NewValidationError("plots", "debe incluir al menos una parcela")
	}
	plots := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, p := range in {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, domain.NewValidationError("plots", "parcela vacía")
		}
		if _, dup := seen[p]; dup {
			return nil, domain.NewValidationError("plots", "parcela repetida: "+p)
		}
		seen[p] = struct{}{}
		plots = append(plots, p)
	}
	if !declared.IsPositive() {
		return nil, domain.NewValidationError("declaredQuantity", "debe ser mayor que cero")
	}
	switch {
	case number == "":
		return nil, domain.NewValidationError("manifestNumber", "requerido")
	case destination == "":
		return nil, domain.NewValidationError("destination", "requerido")
	case site == "":
		return nil, domain.NewValidationError("site", "requerido")
	}
	return plots, nil
}

// ── Transporte ────────────────────────────────────────────────────────────────

// CompleteInput datos del transportista.
type CompleteInput struct {
	TransporterName  string
	TransporterDocID string
	VehiclePlate     string
	CarrierName      string
}

// Complete promueve el romaneio fiscal a completo (status pending) y consume el fiscal.
// El romaneio puede venir escaneado de otro dispositivo y no existir localmente.
func (uc *UseCase) Complete(ctx context.Context, m *entity.Manifest, in CompleteInput) (*entity.CompletedManifest, error) {
	if m == nil {
		return nil, domain.NewValidationError("manifest", "romaneio requerido")
	}
	if strings.TrimSpace(m.ID) == "" {
		return nil, domain.NewValidationError("id", "requerido")
	}
	// Un romaneio escaneado no pasó por Create en este dispositivo.
	if _, err := validateHeader(strings.TrimSpace(m.Site), strings.TrimSpace(m.ManifestNumber),
		strings.TrimSpace(m.Destination), m.Plots, m.DeclaredQuantity); err != nil {
		return nil, err
	}

	t := entity.Transport{
		TransporterName:  strings.TrimSpace(in.TransporterName),
		TransporterDocID: carrier.FormatDocument(in.TransporterDocID),
		VehiclePlate:     carrier.NormalizePlate(in.VehiclePlate),
		CarrierName:      strings.TrimSpace(in.CarrierName),
	}
	switch {
	case t.TransporterName == "":
		return nil, domain.NewValidationError("transporterName", "requerido")
	case t.TransporterDocID == "":
		return nil, domain.NewValidationError("transporterDocId", "requerido")
	case t.VehiclePlate == "":
		return nil, domain.NewValidationError("vehiclePlate", "requerido")
	case t.CarrierName == "":
		return nil, domain.NewValidationError("carrierName", "requerido")
	}

	existing, err := uc.manifests.FindCompleted(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("buscar romaneio completo: %w", err)
	}
	if existing != nil {
		return nil, domain.NewValidationError("id", "el romaneio ya fue completado")
	}

	c := entity.Promote(m, t, uc.now())
	if err := uc.manifests.SaveCompleted(ctx, c); err != nil {
		return nil, fmt.Errorf("completar romaneio: %w", err)
	}

	uc.log.Info().
		Str("manifest_id", c.ID).
		Str("plate", c.VehiclePlate).
		Str("carrier", c.CarrierName).
		Msg("romaneio completado por el transportista")
	return c, nil
}

// Dispatch confirma la salida del vehículo: pending -> completed.
func (uc *UseCase) Dispatch(ctx context.Context, id string) (*entity.CompletedManifest, error) {
	c, err := uc.manifests.FindCompleted(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar romaneio completo: %w", err)
	}
	if c == nil {
		if f, _ := uc.manifests.FindFiscal(ctx, id); f != nil {
			return nil, domain.NewValidationError("status", "el romaneio aún no tiene datos de transporte")
		}
		return nil, domain.ErrNotFound
	}
	if c.Status != entity.ManifestStatusPending {
		return nil, domain.NewValidationError("status", fmt.Sprintf("no se puede despachar desde %s", c.Status))
	}

	c.Status = entity.ManifestStatusCompleted
	if err := uc.manifests.SaveCompleted(ctx, c); err != nil {
		return nil, fmt.Errorf("despachar romaneio: %w", err)
	}
	uc.log.Info().Str("manifest_id", c.ID).Msg("romaneio despachado")
	return c, nil
}

// MarkDelivered fija status delivered. Si el romaneio existe localmente se parte de la copia
// local; si no, del registro escaneado.
func (uc *UseCase) MarkDelivered(ctx context.Context, scanned *entity.CompletedManifest) (*entity.CompletedManifest, error) {
	if scanned == nil {
		return nil, domain.NewValidationError("manifest", "romaneio requerido")
	}
	local, err := uc.manifests.FindCompleted(ctx, scanned.ID)
	if err != nil {
		return nil, fmt.Errorf("buscar romaneio completo: %w", err)
	}
	c := local
	if c == nil {
		cp := *scanned
		c = &cp
	}
	c.Status = entity.ManifestStatusDelivered
	if err := uc.manifests.SaveCompleted(ctx, c); err != nil {
		return nil, fmt.Errorf("entregar romaneio: %w", err)
	}
	return c, nil
}

// ── Consultas ─────────────────────────────────────────────────────────────────

// LookupByID busca en la etapa fiscal y luego en la completa.
func (uc *UseCase) LookupByID(ctx context.Context, id string) (entity.ManifestRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "requerido")
	}
	rec, err := uc.manifests.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar romaneio: %w", err)
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// Stages listados de ambas etapas.
type Stages struct {
	Fiscal    []entity.Manifest          `json:"fiscalManifests"`
	Completed []entity.CompletedManifest `json:"completedManifests"`
}

// Etapas aceptadas por List.
const (
	StageFiscal    = "fiscal"
	StageCompleted = "completed"
)

// List devuelve los romaneios de la etapa pedida; stage vacío = ambas.
func (uc *UseCase) List(ctx context.Context, stage string) (*Stages, error) {
	out := &Stages{Fiscal: []entity.Manifest{}, Completed: []entity.CompletedManifest{}}
	switch stage {
	case "":
		out.Fiscal = uc.manifests.ListFiscal(ctx)
		out.Completed = uc.manifests.ListCompleted(ctx)
	case StageFiscal:
		out.Fiscal = uc.manifests.ListFiscal(ctx)
	case StageCompleted:
		out.Completed = uc.manifests.ListCompleted(ctx)
	default:
		return nil, domain.NewValidationError("stage", "valores permitidos: fiscal, completed")
	}
	return out, nil
}

// ── Código QR ─────────────────────────────────────────────────────────────────

// Code payload textual y su imagen PNG.
type Code struct {
	Payload string
	PNG     []byte
}

// Emit serializa el romaneio y genera la imagen del código.
func (uc *UseCase) Emit(ctx context.Context, rec entity.ManifestRecord) (*Code, error) {
	payload, err := romaneio.EncodePayload(rec)
	if err != nil {
		return nil, err
	}
	png, err := uc.encoder.Encode(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("generar código: %w", err)
	}
	return &Code{Payload: payload, PNG: png}, nil
}

// EmitByID emite el código del romaneio guardado localmente.
func (uc *UseCase) EmitByID(ctx context.Context, id string) (*Code, error) {
	rec, err := uc.LookupByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.Emit(ctx, rec)
}

// Scan decodifica un payload escaneado. Si el id ya existe localmente devuelve la etapa
// guardada, así escanear dos veces el mismo código da el mismo resultado.
func (uc *UseCase) Scan(ctx context.Context, payload string) (entity.ManifestRecord, error) {
	rec, err := romaneio.DecodePayload(payload)
	if err != nil {
		return nil, err
	}
	local, err := uc.manifests.FindByID(ctx, rec.Header().ID)
	if err != nil {
		return nil, fmt.Errorf("buscar romaneio: %w", err)
	}
	if local != nil {
		return local, nil
	}
	return rec, nil
}

// ScanImage lee el código de una imagen y luego aplica Scan.
func (uc *UseCase) ScanImage(ctx context.Context, image []byte) (entity.ManifestRecord, error) {
	if len(image) == 0 {
		return nil, domain.NewDecodeError("imagen vacía", nil)
	}
	payload, ok, err := uc.reader.Read(ctx, image)
	if err != nil {
		return nil, domain.NewDecodeError("leer imagen", err)
	}
	if !ok {
		return nil, domain.NewDecodeError("la imagen no contiene un código legible", nil)
	}
	return uc.Scan(ctx, payload)
}

// ── Documentos ────────────────────────────────────────────────────────────────

// Slip genera la hoja PDF del romaneio con su código QR.
func (uc *UseCase) Slip(ctx context.Context, id string) (pdf []byte, filename string, err error) {
	rec, err := uc.LookupByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	payload, err := romaneio.EncodePayload(rec)
	if err != nil {
		return nil, "", err
	}
	pdf, err = uc.slips.GenerateSlip(ctx, rec, payload)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("romaneio_%s.pdf", fileSafe(rec.Header().ManifestNumber)), nil
}

// Waybill exporta el romaneio a XML con su huella SHA-384.
func (uc *UseCase) Waybill(ctx context.Context, id string) (*ports.Waybill, string, error) {
	rec, err := uc.LookupByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	wb, err := uc.waybills.Export(ctx, rec)
	if err != nil {
		return nil, "", fmt.Errorf("exportar guía: %w", err)
	}
	return wb, fmt.Sprintf("romaneio_%s.xml", fileSafe(rec.Header().ManifestNumber)), nil
}

func fileSafe(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
	if s == "" {
		return "sin_numero"
	}
	return s
}

// Package reconciliation confirma el pesaje en báscula de un romaneio completo y lo marca entregado.
package reconciliation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
	"github.com/jhoicas/Romaneio-api/internal/domain/repository"
	"github.com/jhoicas/Romaneio-api/internal/domain/romaneio"
)

// ManifestDeliverer transición a delivered (la implementa manifest.UseCase).
type ManifestDeliverer interface {
	MarkDelivered(ctx context.Context, c *entity.CompletedManifest) (*entity.CompletedManifest, error)
}

// UseCase conciliación de peso.
type UseCase struct {
	readings     repository.ScaleReadingRepository
	manifests    repository.ManifestRepository
	deliverer    ManifestDeliverer
	tolerancePct decimal.Decimal
	log          zerolog.Logger

	now func() time.Time
}

// NewUseCase construye el caso de uso. tolerancePct negativo usa romaneio.DefaultTolerancePct.
func NewUseCase(
	readings repository.ScaleReadingRepository,
	manifests repository.ManifestRepository,
	deliverer ManifestDeliverer,
	tolerancePct decimal.Decimal,
	log zerolog.Logger,
) *UseCase {
	if tolerancePct.IsNegative() {
		tolerancePct = romaneio.DefaultTolerancePct
	}
	return &UseCase{
		readings:     readings,
		manifests:    manifests,
		deliverer:    deliverer,
		tolerancePct: tolerancePct,
		log:          log,
		now:          time.Now,
	}
}

// WeighingInput datos capturados en la báscula.
// Manifest es el romaneio escaneado (opcional); si viene, su id y cantidad declarada mandan.
// Sin Manifest se usa el romaneio completo guardado localmente con ManifestID, y
// DeclaredQuantity (si no es cero) reemplaza la cantidad declarada guardada.
type WeighingInput struct {
	ManifestID       string
	GrossWeight      decimal.Decimal
	TareWeight       decimal.Decimal
	OperatorName     string
	DeclaredQuantity decimal.Decimal
	Manifest         *entity.CompletedManifest
}

// WeighingResult pesaje guardado y romaneio entregado.
type WeighingResult struct {
	Reading  *entity.ScaleReading      `json:"reading"`
	Manifest *entity.CompletedManifest `json:"manifest"`
}

// ConfirmWeighing calcula neto y divergencia, guarda el pesaje y marca el romaneio como
// delivered. La divergencia se registra pero no bloquea. Un segundo pesaje del mismo
// romaneio se rechaza y deja el primero intacto. Si la entrega falla el pesaje se deshace
// y la llamada puede reintentarse.
func (uc *UseCase) ConfirmWeighing(ctx context.Context, in WeighingInput) (*WeighingResult, error) {
	manifestID := strings.TrimSpace(in.ManifestID)
	if in.Manifest != nil {
		manifestID = in.Manifest.ID
	}
	if manifestID == "" {
		return nil, domain.NewValidationError("manifestId", "requerido")
	}
	if err := romaneio.ValidateWeights(in.GrossWeight, in.TareWeight); err != nil {
		return nil, err
	}

	prev, err := uc.readings.GetByManifestID(ctx, manifestID)
	if err != nil {
		return nil, fmt.Errorf("buscar pesaje: %w", err)
	}
	if prev != nil {
		delivered, err := uc.alreadyDelivered(ctx, manifestID)
		if err != nil {
			return nil, err
		}
		if delivered {
			return nil, domain.NewValidationError("manifestId", "el romaneio ya tiene un pesaje confirmado")
		}
		// Pesaje huérfano de un intento que no llegó a marcar la entrega: se reemplaza.
		uc.log.Warn().Str("manifest_id", manifestID).Msg("pesaje previo sin entrega, se reintenta")
	}

	target, declared, err := uc.resolveManifest(ctx, manifestID, in)
	if err != nil {
		return nil, err
	}

	r := romaneio.Reconcile(in.GrossWeight, in.TareWeight, declared, uc.tolerancePct)
	reading := &entity.ScaleReading{
		ManifestID:    manifestID,
		GrossWeight:   in.GrossWeight,
		TareWeight:    in.TareWeight,
		NetWeight:     r.NetWeight,
		DivergencePct: r.DivergencePct,
		MeasuredAt:    entity.Timestamp(uc.now()),
		OperatorName:  strings.TrimSpace(in.OperatorName),
		Status:        r.Status,
		Note:          r.Note,
	}
	if err := uc.readings.Upsert(ctx, reading); err != nil {
		return nil, fmt.Errorf("guardar pesaje: %w", err)
	}

	delivered, err := uc.deliverer.MarkDelivered(ctx, target)
	if err != nil {
		uc.rollback(ctx, manifestID, prev)
		return nil, fmt.Errorf("marcar entregado: %w", err)
	}

	ev := uc.log.Info()
	if r.Status == entity.ReadingDivergent {
		ev = uc.log.Warn().Str("note", r.Note)
	}
	ev.Str("manifest_id", manifestID).
		Str("net_kg", r.NetWeight.String()).
		Str("divergence_pct", r.DivergencePct.String()).
		Str("status", string(r.Status)).
		Msg("pesaje confirmado")

	return &WeighingResult{Reading: reading, Manifest: delivered}, nil
}

// rollback deja el pesaje como estaba antes de ConfirmWeighing. Si tampoco se puede,
// el pesaje queda huérfano y el siguiente intento lo reemplaza.
func (uc *UseCase) rollback(ctx context.Context, manifestID string, prev *entity.ScaleReading) {
	var err error
	if prev != nil {
		err = uc.readings.Upsert(ctx, prev)
	} else {
		err = uc.readings.Delete(ctx, manifestID)
	}
	if err != nil {
		uc.log.Error().Err(err).Str("manifest_id", manifestID).Msg("no se pudo deshacer el pesaje")
	}
}

// alreadyDelivered indica si la copia local del romaneio ya está entregada.
func (uc *UseCase) alreadyDelivered(ctx context.Context, id string) (bool, error) {
	local, err := uc.manifests.FindCompleted(ctx, id)
	if err != nil {
		return false, fmt.Errorf("buscar romaneio: %w", err)
	}
	return local != nil && local.Status == entity.ManifestStatusDelivered, nil
}

// resolveManifest decide el romaneio a entregar y la cantidad declarada contra la que se concilia.
func (uc *UseCase) resolveManifest(ctx context.Context, id string, in WeighingInput) (*entity.CompletedManifest, decimal.Decimal, error) {
	if in.Manifest != nil {
		return in.Manifest, in.Manifest.DeclaredQuantity, nil
	}
	local, err := uc.manifests.FindCompleted(ctx, id)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("buscar romaneio: %w", err)
	}
	if local == nil {
		if f, _ := uc.manifests.FindFiscal(ctx, id); f != nil {
			return nil, decimal.Zero, domain.NewValidationError("manifestId", "el romaneio aún no tiene datos de transporte")
		}
		return nil, decimal.Zero, domain.ErrNotFound
	}
	declared := local.DeclaredQuantity
	if !in.DeclaredQuantity.IsZero() {
		declared = in.DeclaredQuantity
	}
	return local, declared, nil
}

// GetReading pesaje de un romaneio; domain.ErrNotFound si no existe.
func (uc *UseCase) GetReading(ctx context.Context, manifestID string) (*entity.ScaleReading, error) {
	r, err := uc.readings.GetByManifestID(ctx, manifestID)
	if err != nil {
		return nil, fmt.Errorf("buscar pesaje: %w", err)
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// ListReadings todos los pesajes en orden de registro.
func (uc *UseCase) ListReadings(ctx context.Context) []entity.ScaleReading {
	return uc.readings.List(ctx)
}

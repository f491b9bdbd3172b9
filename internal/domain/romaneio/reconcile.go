package romaneio

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// DefaultTolerancePct tolerancia de divergencia aceptada (inclusiva).
var DefaultTolerancePct = decimal.NewFromInt(5)

// Reconciliation resultado de comparar peso neto medido contra cantidad declarada.
type Reconciliation struct {
	NetWeight     decimal.Decimal
	DivergencePct decimal.Decimal
	Status        entity.ReadingStatus
	Note          string
}

// ValidateWeights exige pesos no negativos y bruto >= tara.
func ValidateWeights(gross, tare decimal.Decimal) error {
	if gross.IsNegative() {
		return domain.NewValidationError("grossWeight", "no puede ser negativo")
	}
	if tare.IsNegative() {
		return domain.NewValidationError("tareWeight", "no puede ser negativa")
	}
	if gross.LessThan(tare) {
		return domain.NewValidationError("grossWeight", "el peso bruto debe ser mayor o igual a la tara")
	}
	return nil
}

// Reconcile calcula neto = bruto - tara y la divergencia porcentual contra lo declarado.
// divergencia = |neto - declarado| / declarado * 100 (0 si declarado <= 0).
// Es válido si divergencia <= tolerancia; el límite exacto cuenta como válido.
func Reconcile(gross, tare, declared, tolerancePct decimal.Decimal) Reconciliation {
	net := gross.Sub(tare)
	pct := decimal.Zero
	if declared.IsPositive() {
		pct = net.Sub(declared).Abs().Div(declared).Mul(hundred)
	}
	r := Reconciliation{
		NetWeight:     net,
		DivergencePct: pct.Round(4),
		Status:        entity.ReadingValid,
	}
	if pct.GreaterThan(tolerancePct) {
		r.Status = entity.ReadingDivergent
		r.Note = fmt.Sprintf("Divergencia de %s%%", pct.StringFixed(1))
	}
	return r
}

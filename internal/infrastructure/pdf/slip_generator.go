// Package pdf genera la hoja imprimible del romaneio, pensada para acompañar la carga.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Finca + N° romaneio  │  Estado + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CARGA: Parcelas / Cantidad declarada / Destino / Fiscal    │
//	│  TRANSPORTE: Conductor / Documento / Placa / Transportadora │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR del payload + instrucciones de escaneo          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Romaneio-api/internal/application/ports"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

var _ ports.SlipGenerator = (*MarotoSlipGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 26, Green: 90, Blue: 58}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSlipGenerator implementa ports.SlipGenerator usando Maroto v2.
type MarotoSlipGenerator struct{}

// NewMarotoSlipGenerator construye el generador.
func NewMarotoSlipGenerator() *MarotoSlipGenerator { return &MarotoSlipGenerator{} }

// GenerateSlip genera el PDF y devuelve sus bytes.
func (g *MarotoSlipGenerator) GenerateSlip(_ context.Context, record entity.ManifestRecord, payload string) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("pdf: romaneio nulo")
	}
	h := record.Header()

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Romaneio "+h.ManifestNumber, true).
		WithAuthor(h.Site, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(record))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(cargoRows(h)...)

	if c, ok := record.(*entity.CompletedManifest); ok {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(transportRows(c)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(codeRow(payload))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: finca + número (izq) y etapa + fecha (der).
func headerRow(record entity.ManifestRecord) core.Row {
	h := record.Header()
	stage := "FISCAL"
	date := h.CreatedAt
	if c, ok := record.(*entity.CompletedManifest); ok {
		stage = strings.ToUpper(string(c.Status))
		date = c.ArrivedAt
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(h.Site, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Destino: "+h.Destination, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ROMANEIO DE CARGA · "+stage, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+h.ManifestNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+date.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// cargoRows: datos declarados por el fiscal.
func cargoRows(h *entity.Manifest) []core.Row {
	return []core.Row{
		sectionTitle("CARGA DECLARADA"),
		field("Parcelas", strings.Join(h.Plots, ", ")),
		field("Cantidad declarada", formatKg(h.DeclaredQuantity.StringFixed(0))+" kg"),
		field("Fiscal", nonEmpty(h.InspectorName, "-")),
	}
}

// transportRows: datos del transportista.
func transportRows(c *entity.CompletedManifest) []core.Row {
	return []core.Row{
		sectionTitle("TRANSPORTE"),
		field("Conductor", c.TransporterName),
		field("Documento", c.TransporterDocID),
		field("Placa", c.VehiclePlate),
		field("Transportadora", c.CarrierName),
	}
}

// codeRow: QR con el payload completo + instrucciones.
func codeRow(payload string) core.Row {
	return row.New(60).Add(
		col.New(5).Add(code.NewQr(payload, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(7).Add(
			text.New("Escanee el código para cargar el romaneio\nen el dispositivo de transporte o báscula.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New("El código contiene todos los datos del romaneio\ny funciona sin conexión.", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 24, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func field(label, value string) core.Row {
	return row.New(6).Add(
		col.New(4).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(8).Add(text.New(value, props.Text{Size: 9, Top: 1})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatKg inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1500" → "-1.500"
func formatKg(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}

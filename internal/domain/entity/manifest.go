package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManifestKind discriminante explícito del romaneio (se fija al construir, viaja en el QR).
type ManifestKind string

const (
	ManifestKindFiscal    ManifestKind = "fiscal"    // creado por el fiscal de campo
	ManifestKindCompleted ManifestKind = "completed" // enriquecido por el transportista
)

// ManifestStatus ciclo de vida de un romaneio completo. Las transiciones nunca retroceden.
type ManifestStatus string

const (
	ManifestStatusPending   ManifestStatus = "pending"
	ManifestStatusCompleted ManifestStatus = "completed"
	ManifestStatusDelivered ManifestStatus = "delivered" // solo lo fija la conciliación en báscula
)

// ManifestRecord unión cerrada: *Manifest o *CompletedManifest.
type ManifestRecord interface {
	RecordKind() ManifestKind
	// Header devuelve los campos comunes del romaneio fiscal.
	Header() *Manifest
	isManifestRecord()
}

// Manifest romaneio fiscal: declaración de carga antes de la recogida.
type Manifest struct {
	Kind             ManifestKind    `json:"kind"`
	ID               string          `json:"id"`
	Site             string          `json:"site"`
	ManifestNumber   string          `json:"manifestNumber"`
	Plots            []string        `json:"plots"`
	DeclaredQuantity decimal.Decimal `json:"declaredQuantity"` // kg
	Destination      string          `json:"destination"`
	CreatedAt        time.Time       `json:"createdAt"`
	InspectorName    string          `json:"inspectorName,omitempty"`
}

// NewManifest construye un romaneio fiscal con el discriminante fijado.
func NewManifest(id, site, number string, plots []string, declared decimal.Decimal, destination, inspector string, createdAt time.Time) *Manifest {
	return &Manifest{
		Kind:             ManifestKindFiscal,
		ID:               id,
		Site:             site,
		ManifestNumber:   number,
		Plots:            append([]string(nil), plots...),
		DeclaredQuantity: declared,
		Destination:      destination,
		CreatedAt:        Timestamp(createdAt),
		InspectorName:    inspector,
	}
}

func (m *Manifest) RecordKind() ManifestKind { return ManifestKindFiscal }
func (m *Manifest) Header() *Manifest        { return m }
func (m *Manifest) isManifestRecord()        {}

// Transport datos del vehículo y conductor que completan el romaneio.
type Transport struct {
	TransporterName  string
	TransporterDocID string
	VehiclePlate     string
	CarrierName      string
}

// CompletedManifest romaneio con datos de transporte. Consume al Manifest de origen (mismo ID).
type CompletedManifest struct {
	Manifest
	TransporterName  string         `json:"transporterName"`
	TransporterDocID string         `json:"transporterDocId"`
	VehiclePlate     string         `json:"vehiclePlate"`
	CarrierName      string         `json:"carrierName"`
	ArrivedAt        time.Time      `json:"arrivedAt"`
	Status           ManifestStatus `json:"status"`
}

// Promote crea el CompletedManifest a partir del fiscal, con estado pending.
func Promote(m *Manifest, t Transport, arrivedAt time.Time) *CompletedManifest {
	base := *m
	base.Kind = ManifestKindCompleted
	base.Plots = append([]string(nil), m.Plots...)
	return &CompletedManifest{
		Manifest:         base,
		TransporterName:  t.TransporterName,
		TransporterDocID: t.TransporterDocID,
		VehiclePlate:     t.VehiclePlate,
		CarrierName:      t.CarrierName,
		ArrivedAt:        Timestamp(arrivedAt),
		Status:           ManifestStatusPending,
	}
}

func (c *CompletedManifest) RecordKind() ManifestKind { return ManifestKindCompleted }
func (c *CompletedManifest) Header() *Manifest        { return &c.Manifest }
func (c *CompletedManifest) isManifestRecord()        {}

// ManifestStorage blob persistido con las dos etapas (disjuntas por ID).
type ManifestStorage struct {
	FiscalManifests    []Manifest          `json:"fiscalManifests"`
	CompletedManifests []CompletedManifest `json:"completedManifests"`
	LastSync           time.Time           `json:"lastSync"`
}

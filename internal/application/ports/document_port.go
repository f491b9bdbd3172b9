package ports

import (
	"context"

	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

// SlipGenerator genera la hoja imprimible (PDF) de un romaneio con su código QR.
type SlipGenerator interface {
	GenerateSlip(ctx context.Context, record entity.ManifestRecord, payload string) ([]byte, error)
}

// Waybill documento XML de transporte con su huella canónica.
type Waybill struct {
	XML         []byte
	Fingerprint string // SHA-384 hex del XML canonicalizado
}

// WaybillExporter exporta un romaneio a XML.
type WaybillExporter interface {
	Export(ctx context.Context, record entity.ManifestRecord) (*Waybill, error)
}

package dto

import "github.com/shopspring/decimal"

// CreateManifestRequest body para POST /api/manifests.
type CreateManifestRequest struct {
	Site             string          `json:"site"`
	ManifestNumber   string          `json:"manifestNumber"`
	Plots            []string        `json:"plots"`
	DeclaredQuantity decimal.Decimal `json:"declaredQuantity"` // kg, número o string
	Destination      string          `json:"destination"`
	InspectorName    string          `json:"inspectorName,omitempty"`
}

// ScanRequest body para POST /api/manifests/scan. Payload es el texto leído del QR.
type ScanRequest struct {
	Payload string `json:"payload"`
}

// CompleteManifestRequest body para POST /api/manifests/complete.
// Payload (QR escaneado) tiene prioridad; sin payload se usa el romaneio fiscal local ManifestID.
type CompleteManifestRequest struct {
	Payload          string `json:"payload,omitempty"`
	ManifestID       string `json:"manifestId,omitempty"`
	TransporterName  string `json:"transporterName"`
	TransporterDocID string `json:"transporterDocId"`
	VehiclePlate     string `json:"vehiclePlate"`
	CarrierName      string `json:"carrierName"`
}

// PayloadResponse payload textual del QR.
type PayloadResponse struct {
	ID      string `json:"id"`
	Payload string `json:"payload"`
}

package dto

import "github.com/shopspring/decimal"

// WeighingRequest body para POST /api/scale/weighings.
// Payload (QR del romaneio completo) es opcional; sin él se usa ManifestID local.
type WeighingRequest struct {
	ManifestID       string           `json:"manifestId,omitempty"`
	Payload          string           `json:"payload,omitempty"`
	GrossWeight      *decimal.Decimal `json:"grossWeight"`
	TareWeight       *decimal.Decimal `json:"tareWeight"`
	OperatorName     string           `json:"operatorName,omitempty"`
	DeclaredQuantity decimal.Decimal  `json:"declaredQuantity,omitempty"`
}

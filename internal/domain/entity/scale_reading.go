package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReadingStatus resultado de la conciliación de peso.
type ReadingStatus string

const (
	ReadingValid     ReadingStatus = "valid"
	ReadingDivergent ReadingStatus = "divergent"
)

// ScaleReading pesaje de báscula asociado a un romaneio (como máximo uno por manifestId).
type ScaleReading struct {
	ManifestID    string          `json:"manifestId"`
	GrossWeight   decimal.Decimal `json:"grossWeight"`
	TareWeight    decimal.Decimal `json:"tareWeight"`
	NetWeight     decimal.Decimal `json:"netWeight"` // gross - tare
	DivergencePct decimal.Decimal `json:"divergencePct"`
	MeasuredAt    time.Time       `json:"measuredAt"`
	OperatorName  string          `json:"operatorName"`
	Status        ReadingStatus   `json:"status"`
	Note          string          `json:"note,omitempty"`
}

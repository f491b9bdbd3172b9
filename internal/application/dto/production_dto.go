package dto

import "github.com/jhoicas/Romaneio-api/internal/domain/entity"

// RecordEntryRequest body para POST /api/production/entries.
type RecordEntryRequest struct {
	WorkerID  string `json:"workerId"`
	Site      string `json:"site"`
	Plot      string `json:"plot"`
	Date      string `json:"date"` // YYYY-MM-DD
	BoxCount  int    `json:"boxCount"`
	CreatedBy string `json:"createdBy,omitempty"`
}

// WorkerListResponse colaboradores activos.
type WorkerListResponse struct {
	Items []entity.Worker `json:"items"`
}

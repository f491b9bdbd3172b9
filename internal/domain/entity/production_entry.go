package entity

import "time"

// DateLayout formato canónico de fechas de calendario (YYYY-MM-DD).
// Los filtros por rango comparan strings, así que el cero a la izquierda es obligatorio.
const DateLayout = "2006-01-02"

// ProductionEntry representa un apontamiento: cajas cosechadas por un colaborador en una parcela y día.
// Se crea una sola vez y nunca se actualiza ni elimina.
type ProductionEntry struct {
	ID         string    `json:"id"`
	WorkerID   string    `json:"workerId"`
	WorkerName string    `json:"workerName"`
	Site       string    `json:"site"`
	Plot       string    `json:"plot"`
	BoxCount   int       `json:"boxCount"` // siempre > 0
	Date       string    `json:"date"`     // YYYY-MM-DD
	CreatedBy  string    `json:"createdBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Timestamp normaliza un instante a UTC con precisión de milisegundos (ISO-8601 en JSON).
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

package repository

import "github.com/jhoicas/Romaneio-api/internal/domain/entity"

// WorkerRepository catálogo de colaboradores (datos de referencia de solo lectura).
type WorkerRepository interface {
	GetByID(id string) (*entity.Worker, bool)
	// ListActive devuelve los colaboradores activos; site vacío = todas las fincas.
	ListActive(site string) []entity.Worker
}

// Package seed carga el catálogo de colaboradores (datos de referencia de solo lectura).
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
	"github.com/jhoicas/Romaneio-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*Catalog)(nil)

//go:embed workers.yaml
var defaultWorkers []byte

type catalogFile struct {
	Workers []entity.Worker `yaml:"workers"`
}

// Catalog catálogo inmutable en memoria; conserva el orden del archivo.
type Catalog struct {
	workers []entity.Worker
	byID    map[string]int
}

// Default devuelve el catálogo embebido.
func Default() *Catalog {
	c, err := Parse(defaultWorkers)
	if err != nil {
		panic(fmt.Sprintf("seed: catálogo embebido inválido: %v", err))
	}
	return c
}

// Load lee el catálogo desde path; path vacío = catálogo embebido.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer catálogo %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodifica el YAML. Rechaza campos desconocidos, ids vacíos o repetidos.
func Parse(raw []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decodificar catálogo: %w", err)
	}

	c := &Catalog{byID: make(map[string]int, len(f.Workers))}
	for i, w := range f.Workers {
		w.ID = strings.TrimSpace(w.ID)
		if w.ID == "" {
			return nil, fmt.Errorf("colaborador #%d sin id", i+1)
		}
		if _, dup := c.byID[w.ID]; dup {
			return nil, fmt.Errorf("colaborador %s repetido", w.ID)
		}
		c.byID[w.ID] = len(c.workers)
		c.workers = append(c.workers, w)
	}
	return c, nil
}

// GetByID implementa repository.WorkerRepository.
func (c *Catalog) GetByID(id string) (*entity.Worker, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	w := c.workers[i]
	return &w, true
}

// ListActive implementa repository.WorkerRepository.
func (c *Catalog) ListActive(site string) []entity.Worker {
	out := make([]entity.Worker, 0, len(c.workers))
	for _, w := range c.workers {
		if !w.Active {
			continue
		}
		if site != "" && w.Site != site {
			continue
		}
		out = append(out, w)
	}
	return out
}

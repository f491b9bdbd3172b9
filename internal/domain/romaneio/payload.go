// Package romaneio contiene las reglas puras del romaneio: el formato del payload que viaja
// en el código QR entre dispositivos y la conciliación de peso en báscula.
package romaneio

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

// envelope lee solo los campos que deciden el tipo y la identidad del payload.
type envelope struct {
	Kind            entity.ManifestKind `json:"kind"`
	ID              string              `json:"id"`
	Site            string              `json:"site"`
	ManifestNumber  string              `json:"manifestNumber"`
	TransporterName string              `json:"transporterName"`
}

// EncodePayload serializa el romaneio (cualquier etapa) como objeto JSON.
// Los nombres de campo son los mismos del registro persistido, más el discriminante "kind".
func EncodePayload(rec entity.ManifestRecord) (string, error) {
	var v any
	switch r := rec.(type) {
	case *entity.Manifest:
		if r == nil {
			return "", domain.NewValidationError("manifest", "romaneio nulo")
		}
		c := *r
		c.Kind = entity.ManifestKindFiscal
		v = c
	case *entity.CompletedManifest:
		if r == nil {
			return "", domain.NewValidationError("manifest", "romaneio nulo")
		}
		c := *r
		c.Kind = entity.ManifestKindCompleted
		v = c
	default:
		return "", domain.NewValidationError("manifest", fmt.Sprintf("tipo de romaneio no soportado %T", rec))
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serializar payload: %w", err)
	}
	return string(b), nil
}

// DecodePayload reconstruye el romaneio desde el texto escaneado.
// Falla con *domain.DecodeError si el JSON es inválido o faltan id, site o manifestNumber.
// Sin "kind" (códigos antiguos) se considera completo si transporterName no está vacío.
func DecodePayload(text string) (entity.ManifestRecord, error) {
	raw := []byte(strings.TrimSpace(text))
	if len(raw) == 0 {
		return nil, domain.NewDecodeError("payload vacío", nil)
	}
	var p envelope
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, domain.NewDecodeError("JSON inválido", err)
	}
	if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Site) == "" || strings.TrimSpace(p.ManifestNumber) == "" {
		return nil, domain.NewDecodeError("faltan campos obligatorios (id, site, manifestNumber)", nil)
	}

	kind := p.Kind
	if kind == "" {
		kind = entity.ManifestKindFiscal
		if strings.TrimSpace(p.TransporterName) != "" {
			kind = entity.ManifestKindCompleted
		}
	}

	switch kind {
	case entity.ManifestKindFiscal:
		var m entity.Manifest
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, domain.NewDecodeError("romaneio fiscal inválido", err)
		}
		m.Kind = entity.ManifestKindFiscal
		return &m, nil
	case entity.ManifestKindCompleted:
		var c entity.CompletedManifest
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, domain.NewDecodeError("romaneio completo inválido", err)
		}
		if strings.TrimSpace(c.TransporterName) == "" {
			return nil, domain.NewDecodeError("romaneio completo sin transportista", nil)
		}
		c.Kind = entity.ManifestKindCompleted
		switch c.Status {
		case "":
			c.Status = entity.ManifestStatusPending
		case entity.ManifestStatusPending, entity.ManifestStatusCompleted, entity.ManifestStatusDelivered:
		default:
			return nil, domain.NewDecodeError(fmt.Sprintf("estado desconocido %q", c.Status), nil)
		}
		return &c, nil
	default:
		return nil, domain.NewDecodeError(fmt.Sprintf("tipo desconocido %q", kind), nil)
	}
}

// Package waybill exporta el romaneio como guía de transporte XML con una huella
// SHA-384 sobre su forma canónica (C14N), para que la báscula o el destino puedan
// comprobar que el documento impreso corresponde al registro.
package waybill

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/Romaneio-api/internal/application/ports"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

var _ ports.WaybillExporter = (*Exporter)(nil)

// Namespace del documento.
const Namespace = "urn:romaneio:waybill:1"

// Exporter implementa ports.WaybillExporter con etree + c14n.
type Exporter struct{}

// NewExporter crea el servicio.
func NewExporter() *Exporter { return &Exporter{} }

// Export construye el XML y calcula su huella.
func (e *Exporter) Export(_ context.Context, record entity.ManifestRecord) (*ports.Waybill, error) {
	if record == nil {
		return nil, fmt.Errorf("waybill: romaneio nulo")
	}
	doc := Build(record)
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("waybill: serializar: %w", err)
	}
	fp, err := Fingerprint(out)
	if err != nil {
		return nil, err
	}
	return &ports.Waybill{XML: out, Fingerprint: fp}, nil
}

// Build arma el documento XML del romaneio (cualquier etapa).
func Build(record entity.ManifestRecord) *etree.Document {
	h := record.Header()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Romaneio")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("id", h.ID)
	root.CreateAttr("kind", string(record.RecordKind()))

	cargo := root.CreateElement("Carga")
	cargo.CreateElement("Fazenda").SetText(h.Site)
	cargo.CreateElement("Numero").SetText(h.ManifestNumber)
	plots := cargo.CreateElement("Parcelas")
	for _, p := range h.Plots {
		plots.CreateElement("Parcela").SetText(p)
	}
	qty := cargo.CreateElement("QuantidadeDeclarada")
	qty.CreateAttr("unit", "kg")
	qty.SetText(h.DeclaredQuantity.String())
	cargo.CreateElement("Destino").SetText(h.Destination)
	cargo.CreateElement("EmitidoEm").SetText(formatTime(h.CreatedAt))
	if h.InspectorName != "" {
		cargo.CreateElement("Fiscal").SetText(h.InspectorName)
	}

	if c, ok := record.(*entity.CompletedManifest); ok {
		tr := root.CreateElement("Transporte")
		tr.CreateAttr("status", string(c.Status))
		tr.CreateElement("Motorista").SetText(c.TransporterName)
		tr.CreateElement("Documento").SetText(c.TransporterDocID)
		tr.CreateElement("Placa").SetText(c.VehiclePlate)
		tr.CreateElement("Transportadora").SetText(c.CarrierName)
		tr.CreateElement("ChegadaEm").SetText(formatTime(c.ArrivedAt))
	}
	return doc
}

// Fingerprint SHA-384 (hex) del XML canonicalizado; dos documentos que solo difieren en
// indentación o en el orden de atributos producen la misma huella.
func Fingerprint(xmlBytes []byte) (string, error) {
	canonical, err := canonicalize(xmlBytes)
	if err != nil {
		return "", fmt.Errorf("waybill: canonicalizar: %w", err)
	}
	sum := sha512.Sum384(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// canonicalize aplica C14N después de quitar la declaración XML y los espacios entre elementos.
func canonicalize(data []byte) ([]byte, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("documento sin elemento raíz")
	}
	var decls []*etree.ProcInst
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok {
			decls = append(decls, pi)
		}
	}
	for _, pi := range decls {
		doc.RemoveChild(pi)
	}
	doc.Unindent()
	compact, err := doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	return c14n.Canonicalize(xml.NewDecoder(bytes.NewReader(compact)))
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Romaneio-api/internal/application/dto"
	"github.com/jhoicas/Romaneio-api/internal/application/manifest"
	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

// HeaderWaybillFingerprint huella SHA-384 de la guía XML.
const HeaderWaybillFingerprint = "X-Waybill-Fingerprint"

// ManifestHandler maneja el ciclo de vida del romaneio y sus códigos.
type ManifestHandler struct {
	uc *manifest.UseCase
}

// NewManifestHandler construye el handler.
func NewManifestHandler(uc *manifest.UseCase) *ManifestHandler {
	return &ManifestHandler{uc: uc}
}

// Create godoc
// @Summary      Crear romaneio fiscal
// @Tags         manifests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateManifestRequest  true  "Datos del romaneio"
// @Success      201   {object}  entity.Manifest
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/manifests [post]
func (h *ManifestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManifestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	inspector := in.InspectorName
	if inspector == "" {
		inspector = GetOperator(c)
	}
	out, err := h.uc.Create(c.UserContext(), manifest.CreateInput{
		Site:             in.Site,
		Number:           in.ManifestNumber,
		Plots:            in.Plots,
		DeclaredQuantity: in.DeclaredQuantity,
		Destination:      in.Destination,
		InspectorName:    inspector,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener romaneio por ID (fiscal o completo)
// @Tags         manifests
// @Produce      json
// @Param        id   path  string  true  "ID del romaneio"
// @Success      200  {object}  entity.CompletedManifest
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manifests/{id} [get]
func (h *ManifestHandler) GetByID(c *fiber.Ctx) error {
	rec, err := h.uc.LookupByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rec)
}

// List godoc
// @Summary      Listar romaneios por etapa
// @Tags         manifests
// @Produce      json
// @Param        stage  query  string  false  "fiscal | completed (vacío = ambas)"
// @Success      200    {object}  manifest.Stages
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/manifests [get]
func (h *ManifestHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("stage"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Scan godoc
// @Summary      Resolver un código escaneado
// @Description  Acepta {"payload": "..."} o la imagen cruda (Content-Type image/*).
// @Tags         manifests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "Texto leído del QR"
// @Success      200   {object}  entity.CompletedManifest
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/manifests/scan [post]
func (h *ManifestHandler) Scan(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), "image/") {
		rec, err := h.uc.ScanImage(c.UserContext(), c.Body())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rec)
	}
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	rec, err := h.uc.Scan(c.UserContext(), in.Payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rec)
}

// Complete godoc
// @Summary      Completar romaneio con datos del transportista
// @Tags         manifests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompleteManifestRequest  true  "QR escaneado o id local + transporte"
// @Success      201   {object}  entity.CompletedManifest
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/manifests/complete [post]
func (h *ManifestHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteManifestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}

	var rec entity.ManifestRecord
	var err error
	switch {
	case strings.TrimSpace(in.Payload) != "":
		rec, err = h.uc.Scan(c.UserContext(), in.Payload)
	case strings.TrimSpace(in.ManifestID) != "":
		rec, err = h.uc.LookupByID(c.UserContext(), in.ManifestID)
	default:
		err = domain.NewValidationError("payload", "payload o manifestId requerido")
	}
	if err != nil {
		return respondError(c, err)
	}
	if rec.RecordKind() != entity.ManifestKindFiscal {
		return respondError(c, domain.NewValidationError("id", "el romaneio ya fue completado"))
	}

	out, err := h.uc.Complete(c.UserContext(), rec.Header(), manifest.CompleteInput{
		TransporterName:  in.TransporterName,
		TransporterDocID: in.TransporterDocID,
		VehiclePlate:     in.VehiclePlate,
		CarrierName:      in.CarrierName,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Dispatch godoc
// @Summary      Confirmar salida del vehículo (pending → completed)
// @Tags         manifests
// @Produce      json
// @Param        id   path  string  true  "ID del romaneio"
// @Success      200  {object}  entity.CompletedManifest
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manifests/{id}/dispatch [post]
func (h *ManifestHandler) Dispatch(c *fiber.Ctx) error {
	out, err := h.uc.Dispatch(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QR godoc
// @Summary      Imagen PNG del código QR
// @Tags         manifests
// @Produce      png
// @Param        id   path  string  true  "ID del romaneio"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manifests/{id}/qr [get]
func (h *ManifestHandler) QR(c *fiber.Ctx) error {
	code, err := h.uc.EmitByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(code.PNG)
}

// Payload godoc
// @Summary      Payload textual del código QR
// @Tags         manifests
// @Produce      json
// @Param        id   path  string  true  "ID del romaneio"
// @Success      200  {object}  dto.PayloadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manifests/{id}/payload [get]
func (h *ManifestHandler) Payload(c *fiber.Ctx) error {
	code, err := h.uc.EmitByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PayloadResponse{ID: c.Params("id"), Payload: code.Payload})
}

// Slip godoc
// @Summary      Hoja PDF del romaneio con QR
// @Tags         manifests
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del romaneio"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manifests/{id}/slip [get]
func (h *ManifestHandler) Slip(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.Slip(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

// Waybill godoc
// @Summary      Guía de transporte XML con huella SHA-384
// @Tags         manifests
// @Produce      xml
// @Param        id   path  string  true  "ID del romaneio"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manifests/{id}/waybill [get]
func (h *ManifestHandler) Waybill(c *fiber.Ctx) error {
	wb, filename, err := h.uc.Waybill(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Set(HeaderWaybillFingerprint, wb.Fingerprint)
	return c.Send(wb.XML)
}

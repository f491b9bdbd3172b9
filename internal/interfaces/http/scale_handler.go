package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Romaneio-api/internal/application/dto"
	"github.com/jhoicas/Romaneio-api/internal/application/manifest"
	"github.com/jhoicas/Romaneio-api/internal/application/reconciliation"
	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

// ScaleHandler maneja los pesajes en báscula.
type ScaleHandler struct {
	uc        *reconciliation.UseCase
	manifests *manifest.UseCase
}

// NewScaleHandler construye el handler. manifests decodifica el QR escaneado en la báscula.
func NewScaleHandler(uc *reconciliation.UseCase, manifests *manifest.UseCase) *ScaleHandler {
	return &ScaleHandler{uc: uc, manifests: manifests}
}

// ConfirmWeighing godoc
// @Summary      Confirmar pesaje y conciliar con lo declarado
// @Description  Con payload se concilia contra el romaneio escaneado; sin él, contra el guardado con manifestId.
// @Tags         scale
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WeighingRequest  true  "Pesos bruto y tara en kg"
// @Success      201   {object}  reconciliation.WeighingResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/scale/weighings [post]
func (h *ScaleHandler) ConfirmWeighing(c *fiber.Ctx) error {
	var in dto.WeighingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.GrossWeight == nil {
		return respondError(c, domain.NewValidationError("grossWeight", "requerido"))
	}
	if in.TareWeight == nil {
		return respondError(c, domain.NewValidationError("tareWeight", "requerido"))
	}

	var scanned *entity.CompletedManifest
	if strings.TrimSpace(in.Payload) != "" {
		rec, err := h.manifests.Scan(c.UserContext(), in.Payload)
		if err != nil {
			return respondError(c, err)
		}
		cm, ok := rec.(*entity.CompletedManifest)
		if !ok {
			return respondError(c, domain.NewValidationError("payload", "la báscula solo acepta romaneios completos"))
		}
		scanned = cm
	}

	operator := in.OperatorName
	if operator == "" {
		operator = GetOperator(c)
	}
	out, err := h.uc.ConfirmWeighing(c.UserContext(), reconciliation.WeighingInput{
		ManifestID:       in.ManifestID,
		GrossWeight:      *in.GrossWeight,
		TareWeight:       *in.TareWeight,
		OperatorName:     operator,
		DeclaredQuantity: in.DeclaredQuantity,
		Manifest:         scanned,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pesajes
// @Tags         scale
// @Produce      json
// @Success      200  {array}  entity.ScaleReading
// @Router       /api/scale/weighings [get]
func (h *ScaleHandler) List(c *fiber.Ctx) error {
	items := h.uc.ListReadings(c.UserContext())
	if items == nil {
		items = []entity.ScaleReading{}
	}
	return c.JSON(items)
}

// GetByManifest godoc
// @Summary      Pesaje de un romaneio
// @Tags         scale
// @Produce      json
// @Param        manifestId  path  string  true  "ID del romaneio"
// @Success      200  {object}  entity.ScaleReading
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/scale/weighings/{manifestId} [get]
func (h *ScaleHandler) GetByManifest(c *fiber.Ctx) error {
	r, err := h.uc.GetReading(c.UserContext(), c.Params("manifestId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(r)
}

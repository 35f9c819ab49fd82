package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/application/usecase"
	"github.com/distrito-diamante/crm-api/internal/domain"
)

// PolizaHandler maneja las peticiones HTTP para Poliza (protegido).
type PolizaHandler struct {
	uc    *usecase.PolizaUseCase
	pdfUC *usecase.PolizaPDFUseCase
}

// NewPolizaHandler construye el handler.
func NewPolizaHandler(uc *usecase.PolizaUseCase, pdfUC *usecase.PolizaPDFUseCase) *PolizaHandler {
	return &PolizaHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Crear póliza
// @Tags         polizas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePolizaRequest  true  "Datos de la póliza"
// @Success      201   {object}  dto.PolizaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/polizas [post]
func (h *PolizaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePolizaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero_poliza es requerido y fecha_fin no puede ser anterior a fecha_inicio"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una póliza con ese número"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener póliza por ID
// @Tags         polizas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la póliza"
// @Success      200  {object}  dto.PolizaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/polizas/{id} [get]
func (h *PolizaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "póliza no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pólizas enriquecidas
// @Tags         polizas
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página (desde 1)"  default(1)
// @Param        limit  query  int  false  "Filas por página"  default(25)
// @Success      200    {object}  dto.PolizaListResponse
// @Router       /api/polizas [get]
func (h *PolizaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(parsePage(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar póliza
// @Tags         polizas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la póliza"
// @Param        body  body  dto.UpdatePolizaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PolizaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/polizas/{id} [put]
func (h *PolizaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdatePolizaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_fin no puede ser anterior a fecha_inicio"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una póliza con ese número"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "póliza no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar póliza
// @Tags         polizas
// @Security     Bearer
// @Param        id  path  int  true  "ID de la póliza"
// @Success      204
// @Router       /api/polizas/{id} [delete]
func (h *PolizaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DescargarPDF godoc
// @Summary      Descargar carátula PDF de la póliza
// @Tags         polizas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la póliza"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/polizas/{id}/pdf [get]
func (h *PolizaHandler) DescargarPDF(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	pdfBytes, filename, err := h.pdfUC.DescargarCaratula(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "póliza no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/application/usecase"
)

// CatalogoHandler expone las tablas de consulta para los selects de la UI.
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Roles GET /api/catalogos/roles
func (h *CatalogoHandler) Roles(c *fiber.Ctx) error {
	return h.respond(c, h.uc.Roles)
}

// EstadosUsuario GET /api/catalogos/estados-usuario
func (h *CatalogoHandler) EstadosUsuario(c *fiber.Ctx) error {
	return h.respond(c, h.uc.EstadosUsuario)
}

// TiposSeguro GET /api/catalogos/tipos-seguro
func (h *CatalogoHandler) TiposSeguro(c *fiber.Ctx) error {
	return h.respond(c, h.uc.TiposSeguro)
}

// EstadosPoliza GET /api/catalogos/estados-poliza
func (h *CatalogoHandler) EstadosPoliza(c *fiber.Ctx) error {
	return h.respond(c, h.uc.EstadosPoliza)
}

func (h *CatalogoHandler) respond(c *fiber.Ctx, fetch func() ([]dto.CatalogoResponse, error)) error {
	out, err := fetch()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

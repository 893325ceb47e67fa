package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wine-mart/internal/application/dto"
	"github.com/jhoicas/wine-mart/internal/application/usecase"
	"github.com/jhoicas/wine-mart/pkg/logger"
)

// WineHandler maneja las peticiones HTTP del inventario.
type WineHandler struct {
	uc  *usecase.WineUseCase
	log *logger.Logger
}

// NewWineHandler construye el handler.
func NewWineHandler(uc *usecase.WineUseCase, log *logger.Logger) *WineHandler {
	return &WineHandler{uc: uc, log: log}
}

// Add godoc
// @Summary      Agregar vino
// @Tags         wines
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddWineRequest  true  "name, type (Red|White|Rose), price, stock"
// @Success      201   {object}  dto.AddWineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/wines [post]
func (h *WineHandler) Add(c *fiber.Ctx) error {
	var in dto.AddWineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddWine(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Ver inventario
// @Tags         wines
// @Produce      json
// @Success      200  {object}  dto.WineListResponse
// @Router       /api/wines [get]
func (h *WineHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListWines(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener vino por ID
// @Tags         wines
// @Produce      json
// @Param        id   path  int  true  "ID del vino"
// @Success      200  {object}  dto.WineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/wines/{id} [get]
func (h *WineHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.GetWine(c.UserContext(), int64(id))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

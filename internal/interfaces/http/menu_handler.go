package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wine-mart/internal/application/dto"
	"github.com/jhoicas/wine-mart/internal/domain/menu"
)

// MenuHandler expone las acciones disponibles del punto de venta.
type MenuHandler struct{}

// NewMenuHandler construye el handler.
func NewMenuHandler() *MenuHandler { return &MenuHandler{} }

// List godoc
// @Summary      Menú de acciones
// @Tags         menu
// @Produce      json
// @Success      200  {array}  dto.MenuItemResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items := make([]dto.MenuItemResponse, 0, len(menu.All()))
	for _, a := range menu.All() {
		r := a.Route()
		items = append(items, dto.MenuItemResponse{Key: a.String(), Label: a.Label(), Method: r.Method, Path: r.Path})
	}
	return c.JSON(items)
}

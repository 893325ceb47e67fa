package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wine-mart/internal/application/sales"
	"github.com/jhoicas/wine-mart/internal/application/usecase"
	"github.com/jhoicas/wine-mart/internal/domain/menu"
	"github.com/jhoicas/wine-mart/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WineUC     *usecase.WineUseCase
	PurchaseUC *sales.PurchaseUseCase
	ReportUC   *sales.ReportUseCase
	Log        *logger.Logger
}

// Router registra las rutas de la API. Las cuatro acciones del menú se registran
// recorriendo menu.All(), cada una con la ruta que declara.
func Router(app *fiber.App, deps RouterDeps) {
	wineHandler := NewWineHandler(deps.WineUC, deps.Log)
	saleHandler := NewSaleHandler(deps.PurchaseUC, deps.ReportUC, deps.Log)

	actions := map[menu.Action]fiber.Handler{
		menu.AddWine:       wineHandler.Add,
		menu.ViewInventory: wineHandler.List,
		menu.PurchaseWine:  saleHandler.Purchase,
		menu.SalesReport:   saleHandler.Report,
	}
	for _, a := range menu.All() {
		r := a.Route()
		app.Add(r.Method, r.Path, actions[a])
	}

	api := app.Group("/api")
	api.Get("/menu", NewMenuHandler().List)
	api.Get("/wines/:id", wineHandler.GetByID)
}

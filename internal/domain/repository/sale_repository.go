package repository

import (
	"context"

	"github.com/jhoicas/wine-mart/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia del libro de ventas.
type SaleRepository interface {
	// Create persiste la venta y asigna sale.ID. Devuelve domain.ErrReferentialIntegrity si WineID no existe.
	Create(ctx context.Context, sale *entity.Sale) error
	// Report une ventas con vinos, de la más reciente a la más antigua.
	Report(ctx context.Context) ([]*entity.SalesReportRow, error)
}

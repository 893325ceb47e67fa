package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/wine-mart/internal/application/dto"
	"github.com/jhoicas/wine-mart/internal/domain"
	"github.com/jhoicas/wine-mart/internal/domain/entity"
	"github.com/jhoicas/wine-mart/internal/domain/repository"
)

// PurchaseUseCase registra compras: valida stock, descuenta inventario y asienta la venta
// en una sola transacción con la fila del vino bloqueada (SELECT FOR UPDATE).
type PurchaseUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(txRunner TxRunner) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, now: time.Now}
}

// WithClock reemplaza el reloj usado para fechar las ventas.
func (uc *PurchaseUseCase) WithClock(now func() time.Time) *PurchaseUseCase {
	uc.now = now
	return uc
}

// Purchase ejecuta la compra.
//
// Retorna:
//   - domain.ErrInvalidInput      si wine_id o quantity no son positivos.
//   - domain.ErrNotFound          si el vino no existe.
//   - domain.ErrInsufficientStock si quantity supera el stock; no se modifica nada.
func (uc *PurchaseUseCase) Purchase(ctx context.Context, in dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.WineID <= 0 {
		return nil, fmt.Errorf("%w: wine_id es requerido", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}

	var out *dto.PurchaseResponse
	err := uc.txRunner.RunPurchase(ctx, func(
		wineRepo repository.WineRepository,
		saleRepo repository.SaleRepository,
	) error {
		// ── validated ──
		wine, err := wineRepo.GetForUpdate(ctx, in.WineID)
		if err != nil {
			return err
		}
		if wine == nil {
			return domain.ErrNotFound
		}
		if !wine.HasStock(in.Quantity) {
			return domain.ErrInsufficientStock
		}

		// ── committed ──
		total := entity.TotalFor(wine.Price, in.Quantity)
		if err := wineRepo.DecrementStock(ctx, wine.ID, in.Quantity); err != nil {
			return err
		}
		sale := &entity.Sale{
			WineID:     wine.ID,
			Quantity:   in.Quantity,
			TotalPrice: total,
			Date:       uc.now().Truncate(time.Second),
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		out = &dto.PurchaseResponse{
			SaleID:         sale.ID,
			WineID:         wine.ID,
			WineName:       wine.Name,
			Quantity:       sale.Quantity,
			UnitPrice:      wine.Price,
			TotalPrice:     total,
			RemainingStock: wine.Stock - in.Quantity,
			Date:           sale.Date.Format(entity.SaleDateLayout),
			Message:        fmt.Sprintf("Compraste %d x %s por %s", sale.Quantity, wine.Name, total.String()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/wine-mart/internal/domain"
	"github.com/jhoicas/wine-mart/internal/domain/entity"
	"github.com/jhoicas/wine-mart/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del libro de ventas sobre PostgreSQL (usable con pool o tx).
// La fecha se guarda como texto "YYYY-MM-DD HH:MM:SS", que ordena igual que cronológicamente.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create asienta una venta y asigna el id generado.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (wine_id, quantity, total_price, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sale.WineID, sale.Quantity, sale.TotalPrice, sale.Date.Format(entity.SaleDateLayout),
	).Scan(&sale.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: wine_id %d", domain.ErrReferentialIntegrity, sale.WineID)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Report une ventas con vinos, de la más reciente a la más antigua.
func (r *SaleRepo) Report(ctx context.Context) ([]*entity.SalesReportRow, error) {
	query := `
		SELECT wines.name, sales.quantity, sales.total_price, sales.date
		FROM sales
		JOIN wines ON wines.id = sales.wine_id
		ORDER BY sales.date DESC, sales.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.SalesReportRow, 0)
	for rows.Next() {
		var row entity.SalesReportRow
		var date string
		if err := rows.Scan(&row.WineName, &row.Quantity, &row.TotalPrice, &date); err != nil {
			return nil, fmt.Errorf("scan sales report: %w", err)
		}
		row.Date, err = time.ParseInLocation(entity.SaleDateLayout, date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse sale date %q: %w", date, err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

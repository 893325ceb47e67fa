package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRequest body para POST /api/purchases.
type PurchaseRequest struct {
	WineID   int64 `json:"wine_id"`
	Quantity int   `json:"quantity"`
}

// PurchaseResponse resultado de una compra confirmada.
type PurchaseResponse struct {
	SaleID         int64           `json:"sale_id"`
	WineID         int64           `json:"wine_id"`
	WineName       string          `json:"wine_name"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	RemainingStock int             `json:"remaining_stock"`
	Date           string          `json:"date"`
	Message        string          `json:"message"`
}

// SalesReportItem una fila del reporte de ventas.
type SalesReportItem struct {
	WineName   string          `json:"wine_name"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Date       string          `json:"date"`
}

// SalesReportResponse reporte cronológico (más reciente primero) con totales.
type SalesReportResponse struct {
	Items       []SalesReportItem `json:"items"`
	Count       int               `json:"count"`
	UnitsSold   int               `json:"units_sold"`
	Revenue     decimal.Decimal   `json:"revenue"`
	GeneratedAt time.Time         `json:"generated_at"`
	Message     string            `json:"message,omitempty"`
}

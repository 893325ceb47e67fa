package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleDateLayout formato de texto con el que se persiste la fecha de una venta.
const SaleDateLayout = "2006-01-02 15:04:05"

// Sale registro inmutable de una compra sobre un vino.
type Sale struct {
	ID         int64
	WineID     int64
	Quantity   int
	TotalPrice decimal.Decimal // Price del vino * Quantity al momento de la venta
	Date       time.Time
}

// SalesReportRow fila del reporte de ventas (venta unida con el nombre del vino).
type SalesReportRow struct {
	WineName   string
	Quantity   int
	TotalPrice decimal.Decimal
	Date       time.Time
}

// TotalFor calcula el total de una venta: price * quantity.
func TotalFor(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

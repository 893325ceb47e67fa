package sales

import (
	"context"

	"github.com/jhoicas/wine-mart/internal/application/dto"
	"github.com/jhoicas/wine-mart/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD, con repositorios de inventario y ventas atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		wineRepo repository.WineRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReportPDFGenerator genera la representación PDF del reporte de ventas.
type ReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, report *dto.SalesReportResponse) ([]byte, error)
}

// ReportXMLExporter serializa el reporte de ventas como documento XML.
type ReportXMLExporter interface {
	ExportSalesReportXML(report *dto.SalesReportResponse) ([]byte, error)
}

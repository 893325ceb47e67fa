package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wine-mart/internal/application/dto"
	"github.com/jhoicas/wine-mart/internal/domain/entity"
	"github.com/jhoicas/wine-mart/internal/domain/repository"
)

// MsgNoSales mensaje informativo cuando el libro de ventas está vacío.
const MsgNoSales = "Aún no hay ventas."

// ReportUseCase arma el reporte de ventas y sus exportaciones (PDF, XML).
type ReportUseCase struct {
	saleRepo repository.SaleRepository
	pdf      ReportPDFGenerator
	xml      ReportXMLExporter
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso. pdf y xml pueden ser nil si no se exporta ese formato.
func NewReportUseCase(saleRepo repository.SaleRepository, pdf ReportPDFGenerator, xml ReportXMLExporter) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, pdf: pdf, xml: xml, now: time.Now}
}

// SalesReport devuelve las ventas unidas con el nombre del vino, de la más reciente a la más antigua.
func (uc *ReportUseCase) SalesReport(ctx context.Context) (*dto.SalesReportResponse, error) {
	rows, err := uc.saleRepo.Report(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.SalesReportResponse{
		Items:       make([]dto.SalesReportItem, 0, len(rows)),
		Revenue:     decimal.Zero,
		GeneratedAt: uc.now(),
	}
	for _, r := range rows {
		out.Items = append(out.Items, dto.SalesReportItem{
			WineName:   r.WineName,
			Quantity:   r.Quantity,
			TotalPrice: r.TotalPrice,
			Date:       r.Date.Format(entity.SaleDateLayout),
		})
		out.UnitsSold += r.Quantity
		out.Revenue = out.Revenue.Add(r.TotalPrice)
	}
	out.Count = len(out.Items)
	if out.Count == 0 {
		out.Message = MsgNoSales
	}
	return out, nil
}

// ExportPDF genera el reporte en PDF. Devuelve bytes y nombre de archivo sugerido.
func (uc *ReportUseCase) ExportPDF(ctx context.Context) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("reporte: exportación PDF no configurada")
	}
	report, err := uc.SalesReport(ctx)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateSalesReportPDF(ctx, report)
	if err != nil {
		return nil, "", err
	}
	return b, reportFilename(report.GeneratedAt, "pdf"), nil
}

// ExportXML genera el reporte en XML. Devuelve bytes y nombre de archivo sugerido.
func (uc *ReportUseCase) ExportXML(ctx context.Context) ([]byte, string, error) {
	if uc.xml == nil {
		return nil, "", fmt.Errorf("reporte: exportación XML no configurada")
	}
	report, err := uc.SalesReport(ctx)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.xml.ExportSalesReportXML(report)
	if err != nil {
		return nil, "", err
	}
	return b, reportFilename(report.GeneratedAt, "xml"), nil
}

func reportFilename(at time.Time, ext string) string {
	return fmt.Sprintf("reporte-ventas-%s.%s", at.Format("20060102-150405"), ext)
}

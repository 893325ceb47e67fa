// Package xmlreport serializa el reporte de ventas como XML con etree.
package xmlreport

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/wine-mart/internal/application/dto"
	"github.com/jhoicas/wine-mart/internal/application/sales"
)

var _ sales.ReportXMLExporter = (*EtreeExporter)(nil)

// EtreeExporter implementa sales.ReportXMLExporter.
type EtreeExporter struct{}

// NewEtreeExporter construye el exportador.
func NewEtreeExporter() *EtreeExporter { return &EtreeExporter{} }

// ExportSalesReportXML produce:
//
//	<salesReport generatedAt="..." count="2" unitsSold="4" revenue="1520.50">
//	  <sale date="2026-10-17 12:00:00"><wine>Merlot</wine><quantity>3</quantity><totalPrice>1500.00</totalPrice></sale>
//	</salesReport>
func (e *EtreeExporter) ExportSalesReportXML(report *dto.SalesReportResponse) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("salesReport")
	root.CreateAttr("generatedAt", report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"))
	root.CreateAttr("count", strconv.Itoa(report.Count))
	root.CreateAttr("unitsSold", strconv.Itoa(report.UnitsSold))
	root.CreateAttr("revenue", report.Revenue.StringFixed(2))

	for _, it := range report.Items {
		sale := root.CreateElement("sale")
		sale.CreateAttr("date", it.Date)
		sale.CreateElement("wine").SetText(it.WineName)
		sale.CreateElement("quantity").SetText(strconv.Itoa(it.Quantity))
		sale.CreateElement("totalPrice").SetText(it.TotalPrice.StringFixed(2))
	}

	doc.Indent(2)
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar reporte: %w", err)
	}
	return b, nil
}

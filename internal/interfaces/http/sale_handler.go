package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wine-mart/internal/application/dto"
	"github.com/jhoicas/wine-mart/internal/application/sales"
	"github.com/jhoicas/wine-mart/pkg/logger"
)

// SaleHandler maneja compras y el reporte de ventas.
type SaleHandler struct {
	purchase *sales.PurchaseUseCase
	report   *sales.ReportUseCase
	log      *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(purchase *sales.PurchaseUseCase, report *sales.ReportUseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{purchase: purchase, report: report, log: log}
}

// Purchase godoc
// @Summary      Comprar vino
// @Description  Descuenta stock y registra la venta en una sola transacción.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseRequest  true  "wine_id, quantity"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *SaleHandler) Purchase(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.purchase.Purchase(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().
		Int64("sale_id", out.SaleID).
		Int64("wine_id", out.WineID).
		Int("quantity", out.Quantity).
		Str("total", out.TotalPrice.String()).
		Msg("venta registrada")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Report godoc
// @Summary      Reporte de ventas
// @Description  Ventas unidas con el nombre del vino, de la más reciente a la más antigua.
// @Tags         sales
// @Produce      json
// @Produce      application/pdf
// @Produce      application/xml
// @Param        format  query  string  false  "json (default), pdf o xml"
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/report [get]
func (h *SaleHandler) Report(c *fiber.Ctx) error {
	switch strings.ToLower(c.Query("format", "json")) {
	case "json":
		out, err := h.report.SalesReport(c.UserContext())
		if err != nil {
			return writeError(c, h.log, err)
		}
		return c.JSON(out)
	case "pdf":
		b, filename, err := h.report.ExportPDF(c.UserContext())
		if err != nil {
			return writeError(c, h.log, err)
		}
		return sendFile(c, "application/pdf", filename, b)
	case "xml":
		b, filename, err := h.report.ExportXML(c.UserContext())
		if err != nil {
			return writeError(c, h.log, err)
		}
		return sendFile(c, fiber.MIMEApplicationXMLCharsetUTF8, filename, b)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser json, pdf o xml"})
	}
}

func sendFile(c *fiber.Ctx, contentType, filename string, b []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(b)
}

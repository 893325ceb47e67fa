// Package client cliente HTTP de la API del punto de venta, usado por winectl.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/wine-mart/internal/application/dto"
	"github.com/jhoicas/wine-mart/internal/domain/menu"
)

// APIError error devuelto por la API (cuerpo dto.ErrorResponse).
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return e.Message
}

// Client cliente sobre resty.
type Client struct {
	http *resty.Client
}

// New crea un cliente contra baseURL (ej. http://localhost:8080).
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

// Menu lista las acciones disponibles.
func (c *Client) Menu(ctx context.Context) ([]dto.MenuItemResponse, error) {
	var out []dto.MenuItemResponse
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddWine agrega un vino al inventario.
func (c *Client) AddWine(ctx context.Context, in dto.AddWineRequest) (*dto.AddWineResponse, error) {
	var out dto.AddWineResponse
	r := menu.AddWine.Route()
	if err := c.do(ctx, r.Method, r.Path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWines devuelve el inventario completo.
func (c *Client) ListWines(ctx context.Context) (*dto.WineListResponse, error) {
	var out dto.WineListResponse
	r := menu.ViewInventory.Route()
	if err := c.do(ctx, r.Method, r.Path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Purchase compra quantity unidades de un vino.
func (c *Client) Purchase(ctx context.Context, in dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	var out dto.PurchaseResponse
	r := menu.PurchaseWine.Route()
	if err := c.do(ctx, r.Method, r.Path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SalesReport reporte de ventas en JSON.
func (c *Client) SalesReport(ctx context.Context) (*dto.SalesReportResponse, error) {
	var out dto.SalesReportResponse
	r := menu.SalesReport.Route()
	if err := c.do(ctx, r.Method, r.Path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadReport descarga el reporte como documento (format "pdf" o "xml").
func (c *Client) DownloadReport(ctx context.Context, format string) ([]byte, error) {
	var apiErr dto.ErrorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("format", format).
		SetHeader("Accept", "*/*").
		SetError(&apiErr).
		Get(menu.SalesReport.Route().Path)
	if err != nil {
		return nil, fmt.Errorf("descargar reporte: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Code: apiErr.Code, Message: apiErr.Message}
	}
	return resp.Body(), nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var apiErr dto.ErrorResponse
	req := c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return &APIError{Status: resp.StatusCode(), Code: apiErr.Code, Message: apiErr.Message}
	}
	return nil
}

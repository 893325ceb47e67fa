package dto

import "github.com/shopspring/decimal"

// AddWineRequest body para POST /api/wines.
type AddWineRequest struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"` // Red, White o Rose
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// WineResponse salida de un vino.
type WineResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
	Label string          `json:"label"`
}

// AddWineResponse vino creado más el mensaje de confirmación.
type AddWineResponse struct {
	Wine    WineResponse `json:"wine"`
	Message string       `json:"message"`
}

// WineListResponse inventario completo. Message solo viene cuando no hay vinos.
type WineListResponse struct {
	Items   []WineResponse `json:"items"`
	Total   int            `json:"total"`
	Message string         `json:"message,omitempty"`
}

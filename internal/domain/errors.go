package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrReferentialIntegrity = errors.New("la venta referencia un vino inexistente")
)

package repository

import (
	"context"

	"github.com/jhoicas/wine-mart/internal/domain/entity"
)

// WineRepository define el puerto de persistencia para Wine (DIP).
type WineRepository interface {
	// Create persiste el vino y asigna wine.ID con el id generado por el store.
	Create(ctx context.Context, wine *entity.Wine) error
	// List devuelve todos los vinos en orden de inserción. Lista vacía no es error.
	List(ctx context.Context) ([]*entity.Wine, error)
	// GetByID devuelve nil, nil si el vino no existe.
	GetByID(ctx context.Context, id int64) (*entity.Wine, error)
	// GetForUpdate igual que GetByID pero bloquea la fila (usar dentro de una transacción).
	GetForUpdate(ctx context.Context, id int64) (*entity.Wine, error)
	// DecrementStock resta quantity del stock solo si alcanza.
	// Devuelve domain.ErrNotFound si el vino no existe y domain.ErrInsufficientStock si no alcanza.
	DecrementStock(ctx context.Context, id int64, quantity int) error
}

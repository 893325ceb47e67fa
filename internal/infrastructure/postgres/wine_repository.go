package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wine-mart/internal/domain"
	"github.com/jhoicas/wine-mart/internal/domain/entity"
	"github.com/jhoicas/wine-mart/internal/domain/repository"
)

var _ repository.WineRepository = (*WineRepo)(nil)

// WineRepo implementación del puerto WineRepository sobre PostgreSQL (usable con pool o tx).
type WineRepo struct {
	q Querier
}

// NewWineRepository construye el adaptador de persistencia para vinos. Pasar pool o tx (Querier).
func NewWineRepository(q Querier) *WineRepo {
	return &WineRepo{q: q}
}

// Create persiste un vino nuevo y asigna el id generado.
func (r *WineRepo) Create(ctx context.Context, wine *entity.Wine) error {
	query := `
		INSERT INTO wines (name, type, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, wine.Name, string(wine.Type), wine.Price, wine.Stock).Scan(&wine.ID)
	if err != nil {
		return fmt.Errorf("insert wine: %w", err)
	}
	return nil
}

// List devuelve todos los vinos en orden de inserción.
func (r *WineRepo) List(ctx context.Context) ([]*entity.Wine, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, type, price, stock FROM wines ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list wines: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Wine, 0)
	for rows.Next() {
		w, err := scanWine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wine: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// GetByID obtiene un vino por id.
func (r *WineRepo) GetByID(ctx context.Context, id int64) (*entity.Wine, error) {
	return r.get(ctx, `SELECT id, name, type, price, stock FROM wines WHERE id = $1`, id)
}

// GetForUpdate obtiene el vino y bloquea la fila para update (SELECT FOR UPDATE).
func (r *WineRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Wine, error) {
	return r.get(ctx, `SELECT id, name, type, price, stock FROM wines WHERE id = $1 FOR UPDATE`, id)
}

func (r *WineRepo) get(ctx context.Context, query string, id int64) (*entity.Wine, error) {
	w, err := scanWine(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wine: %w", err)
	}
	return w, nil
}

// DecrementStock descuenta de forma condicional: la fila solo cambia si el stock alcanza.
func (r *WineRepo) DecrementStock(ctx context.Context, id int64, quantity int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE wines SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM wines WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrInsufficientStock
}

func scanWine(row pgx.Row) (*entity.Wine, error) {
	var w entity.Wine
	var wineType string
	if err := row.Scan(&w.ID, &w.Name, &wineType, &w.Price, &w.Stock); err != nil {
		return nil, err
	}
	w.Type = entity.WineType(wineType)
	return &w, nil
}

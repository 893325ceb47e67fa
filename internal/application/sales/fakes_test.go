package sales_test

import (
	"context"
	"sort"

	"github.com/jhoicas/wine-mart/internal/domain"
	"github.com/jhoicas/wine-mart/internal/domain/entity"
	"github.com/jhoicas/wine-mart/internal/domain/repository"
)

// memStore store en memoria con semántica transaccional mínima: RunPurchase restaura
// el estado previo si el callback falla.
type memStore struct {
	wines      map[int64]*entity.Wine
	sales      []*entity.Sale
	nextSaleID int64
	failOnSale error
	commits    int
	rollbacks  int
}

func newMemStore(wines ...entity.Wine) *memStore {
	s := &memStore{wines: map[int64]*entity.Wine{}}
	for i := range wines {
		w := wines[i]
		s.wines[w.ID] = &w
	}
	return s
}

func (s *memStore) snapshot() (map[int64]entity.Wine, int) {
	ws := make(map[int64]entity.Wine, len(s.wines))
	for id, w := range s.wines {
		ws[id] = *w
	}
	return ws, len(s.sales)
}

func (s *memStore) restore(ws map[int64]entity.Wine, nSales int) {
	for id, w := range ws {
		cp := w
		s.wines[id] = &cp
	}
	s.sales = s.sales[:nSales]
}

func (s *memStore) RunPurchase(ctx context.Context, fn func(repository.WineRepository, repository.SaleRepository) error) error {
	ws, n := s.snapshot()
	if err := fn(memWines{s}, memSales{s}); err != nil {
		s.restore(ws, n)
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

type memWines struct{ s *memStore }

func (r memWines) Create(_ context.Context, w *entity.Wine) error {
	w.ID = int64(len(r.s.wines) + 1)
	cp := *w
	r.s.wines[w.ID] = &cp
	return nil
}

func (r memWines) List(_ context.Context) ([]*entity.Wine, error) {
	ids := make([]int64, 0, len(r.s.wines))
	for id := range r.s.wines {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Wine, 0, len(ids))
	for _, id := range ids {
		cp := *r.s.wines[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r memWines) GetByID(_ context.Context, id int64) (*entity.Wine, error) {
	w, ok := r.s.wines[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r memWines) GetForUpdate(ctx context.Context, id int64) (*entity.Wine, error) {
	return r.GetByID(ctx, id)
}

func (r memWines) DecrementStock(_ context.Context, id int64, quantity int) error {
	w, ok := r.s.wines[id]
	if !ok {
		return domain.ErrNotFound
	}
	if w.Stock < quantity {
		return domain.ErrInsufficientStock
	}
	w.Stock -= quantity
	return nil
}

type memSales struct{ s *memStore }

func (r memSales) Create(_ context.Context, sale *entity.Sale) error {
	if r.s.failOnSale != nil {
		return r.s.failOnSale
	}
	if _, ok := r.s.wines[sale.WineID]; !ok {
		return domain.ErrReferentialIntegrity
	}
	r.s.nextSaleID++
	sale.ID = r.s.nextSaleID
	cp := *sale
	r.s.sales = append(r.s.sales, &cp)
	return nil
}

func (r memSales) Report(_ context.Context) ([]*entity.SalesReportRow, error) {
	out := make([]*entity.SalesReportRow, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		out = append(out, &entity.SalesReportRow{
			WineName:   r.s.wines[sale.WineID].Name,
			Quantity:   sale.Quantity,
			TotalPrice: sale.TotalPrice,
			Date:       sale.Date,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wine-mart/internal/application/dto"
	"github.com/jhoicas/wine-mart/internal/domain"
	"github.com/jhoicas/wine-mart/internal/domain/entity"
	"github.com/jhoicas/wine-mart/internal/domain/repository"
)

// MsgNoWines mensaje informativo cuando el inventario está vacío.
const MsgNoWines = "No hay vinos disponibles."

// WineUseCase casos de uso del inventario: alta y consulta de vinos. El stock solo baja vía compras.
type WineUseCase struct {
	repo repository.WineRepository
}

// NewWineUseCase construye el caso de uso.
func NewWineUseCase(repo repository.WineRepository) *WineUseCase {
	return &WineUseCase{repo: repo}
}

// AddWine valida y persiste un vino nuevo con id generado por el store.
func (uc *WineUseCase) AddWine(ctx context.Context, in dto.AddWineRequest) (*dto.AddWineResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	wineType, ok := entity.ParseWineType(in.Type)
	if !ok {
		return nil, fmt.Errorf("%w: type debe ser Red, White o Rose", domain.ErrInvalidInput)
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrInvalidInput)
	}

	wine := &entity.Wine{
		Name:  name,
		Type:  wineType,
		Price: in.Price,
		Stock: in.Stock,
	}
	if err := uc.repo.Create(ctx, wine); err != nil {
		return nil, err
	}
	return &dto.AddWineResponse{
		Wine:    toWineResponse(wine),
		Message: fmt.Sprintf("%s agregado correctamente", wine.Name),
	}, nil
}

// ListWines devuelve el inventario completo en orden de inserción.
func (uc *WineUseCase) ListWines(ctx context.Context) (*dto.WineListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WineResponse, 0, len(list))
	for _, w := range list {
		items = append(items, toWineResponse(w))
	}
	out := &dto.WineListResponse{Items: items, Total: len(items)}
	if len(items) == 0 {
		out.Message = MsgNoWines
	}
	return out, nil
}

// GetWine obtiene un vino por id. Devuelve domain.ErrNotFound si no existe.
func (uc *WineUseCase) GetWine(ctx context.Context, id int64) (*dto.WineResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id inválido", domain.ErrInvalidInput)
	}
	wine, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wine == nil {
		return nil, domain.ErrNotFound
	}
	out := toWineResponse(wine)
	return &out, nil
}

func toWineResponse(w *entity.Wine) dto.WineResponse {
	return dto.WineResponse{
		ID:    w.ID,
		Name:  w.Name,
		Type:  string(w.Type),
		Price: w.Price,
		Stock: w.Stock,
		Label: w.Label(),
	}
}

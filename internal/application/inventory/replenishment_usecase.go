package inventory

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Stock ideal de reposición: 1.5 veces el mínimo, redondeado hacia arriba.
const (
	idealStockNum = 3
	idealStockDen = 2
)

// ReplenishmentUseCase tablero de inventario y lista de faltantes contra el mínimo de cada producto.
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
}

// NewReplenishmentUseCase construye el caso de uso.
func NewReplenishmentUseCase(productRepo repository.ProductRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo}
}

// Dashboard total de productos, faltantes, unidades en stock y valorización.
func (uc *ReplenishmentUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	s, err := uc.productRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalProducts: s.TotalProducts,
		LowStockItems: s.LowStockItems,
		TotalStock:    s.TotalStock,
		TotalValue:    s.TotalValue,
	}, nil
}

// LowStock lista los productos en o bajo su mínimo con la cantidad sugerida para llegar al
// stock ideal. La prioridad sigue el orden del repositorio (mayor déficit primero) y continúa
// entre páginas.
func (uc *ReplenishmentUseCase) LowStock(ctx context.Context, limit, offset int) (*dto.LowStockListResponse, error) {
	list, err := uc.productRepo.ListLowStock(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItemResponse, 0, len(list))
	for i, p := range list {
		items = append(items, toLowStockItem(p, offset+i+1))
	}
	return &dto.LowStockListResponse{
		Items: items,
		Page:  dto.NewPage(limit, offset, len(items)),
	}, nil
}

func toLowStockItem(p *entity.Product, priority int) dto.LowStockItemResponse {
	ideal := IdealStock(p.MinStockLevel)
	suggested := ideal - p.Stock
	if suggested < 0 {
		suggested = 0
	}
	return dto.LowStockItemResponse{
		ProductID:     p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Stock:         p.Stock,
		MinStockLevel: p.MinStockLevel,
		IdealStock:    ideal,
		SuggestedQty:  suggested,
		Cost:          p.Cost,
		EstimatedCost: p.Cost.Mul(decimal.NewFromInt(suggested)),
		Priority:      priority,
	}
}

// IdealStock ceil(min * 1.5).
func IdealStock(minLevel int64) int64 {
	if minLevel <= 0 {
		return 0
	}
	return (minLevel*idealStockNum + idealStockDen - 1) / idealStockDen
}

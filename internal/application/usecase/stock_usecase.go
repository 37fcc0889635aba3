package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// StockUseCase vista de stock por producto e historial de movimientos (solo lectura).
type StockUseCase struct {
	productRepo repository.ProductRepository
	moveRepo    repository.StockMoveRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(productRepo repository.ProductRepository, moveRepo repository.StockMoveRepository) *StockUseCase {
	return &StockUseCase{productRepo: productRepo, moveRepo: moveRepo}
}

// ListStock devuelve on_hand, free_to_use, costo y valorización por producto.
func (uc *StockUseCase) ListStock(ctx context.Context, search string, limit, offset int) (*dto.StockListResponse, error) {
	products, err := uc.productRepo.List(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	items := make([]dto.StockItemResponse, 0, len(products))
	for _, p := range products {
		value := p.Value()
		total = total.Add(value)
		items = append(items, dto.StockItemResponse{
			ProductID:     p.ID,
			Code:          p.Code,
			Name:          p.Name,
			Cost:          p.Cost,
			OnHand:        p.Stock,
			FreeToUse:     p.FreeToUse(),
			Value:         value,
			MinStockLevel: p.MinStockLevel,
			LowStock:      p.IsLowStock(),
		})
	}
	return &dto.StockListResponse{
		Items:      items,
		TotalValue: total,
		Page:       dto.NewPage(limit, offset, len(items)),
	}, nil
}

// ListMoves lista el historial de movimientos con filtros de producto, tipo y rango de fechas.
func (uc *StockUseCase) ListMoves(ctx context.Context, in dto.MoveFilterRequest) (*dto.MoveListResponse, error) {
	in.DefaultPage()
	filter := entity.StockMoveFilter{
		ProductID: in.ProductID,
		MoveType:  strings.ToLower(strings.TrimSpace(in.MoveType)),
		Limit:     in.Limit,
		Offset:    in.Offset,
	}
	if filter.MoveType == "all" {
		filter.MoveType = ""
	}
	var err error
	if filter.From, err = ParseDateParam(in.From, false); err != nil {
		return nil, domain.NewValidationError("from", err.Error())
	}
	if filter.To, err = ParseDateParam(in.To, true); err != nil {
		return nil, domain.NewValidationError("to", err.Error())
	}
	moves, err := uc.moveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MoveResponse, 0, len(moves))
	for _, m := range moves {
		items = append(items, dto.MoveResponse{
			ID:          m.ID,
			Reference:   m.Reference,
			ProductID:   m.ProductID,
			WarehouseID: m.WarehouseID,
			LocationID:  m.LocationID,
			MoveType:    m.MoveType,
			QtyChange:   m.QtyChange,
			StockBefore: m.StockBefore,
			StockAfter:  m.StockAfter,
			CreatedBy:   m.CreatedBy,
			CreatedAt:   m.CreatedAt,
		})
	}
	return &dto.MoveListResponse{
		Items: items,
		Page:  dto.NewPage(in.Limit, in.Offset, len(items)),
	}, nil
}

// ParseDateParam acepta RFC3339 o YYYY-MM-DD. Para una fecha sin hora y endOfDay=true
// devuelve el último instante del día (rango inclusivo). Vacío devuelve nil.
func ParseDateParam(s string, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q (use YYYY-MM-DD o RFC3339)", s)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

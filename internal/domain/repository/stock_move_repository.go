package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// StockMoveRepository define el puerto de persistencia del libro de movimientos (solo inserción).
type StockMoveRepository interface {
	Create(ctx context.Context, move *entity.StockMove) error
	List(ctx context.Context, filter entity.StockMoveFilter) ([]*entity.StockMove, error)
}

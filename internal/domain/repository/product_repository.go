package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// GetForUpdate obtiene el producto con bloqueo de fila (SELECT ... FOR UPDATE) dentro de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateCost(ctx context.Context, productID string, cost decimal.Decimal) error
	// UpdateStock fija el stock a un valor absoluto.
	UpdateStock(ctx context.Context, productID string, stock int64) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error)
	// Delete elimina el producto; ErrConflict si tiene ajustes o movimientos.
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (entity.StockSummary, error)
	// ListLowStock productos en o bajo su mínimo, mayor déficit primero.
	ListLowStock(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}

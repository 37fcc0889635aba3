package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// AdjustmentRepository define el puerto de persistencia para ajustes de inventario.
// Los métodos devuelven (nil, nil) cuando el registro no existe.
type AdjustmentRepository interface {
	Create(ctx context.Context, adj *entity.Adjustment) error
	GetByID(ctx context.Context, id string) (*entity.Adjustment, error)
	// GetForUpdate obtiene el ajuste con bloqueo de fila dentro de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Adjustment, error)
	// GetRevertOf devuelve el ajuste compensatorio creado para originalID, si existe.
	GetRevertOf(ctx context.Context, originalID string) (*entity.Adjustment, error)
	Update(ctx context.Context, adj *entity.Adjustment) error
	// List ordena por created_at descendente.
	List(ctx context.Context, filter entity.AdjustmentFilter) ([]*entity.Adjustment, error)
}

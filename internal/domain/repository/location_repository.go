package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	// List devuelve ubicaciones; warehouseID vacío lista todas.
	List(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.Location, error)
	Delete(ctx context.Context, id string) error
}

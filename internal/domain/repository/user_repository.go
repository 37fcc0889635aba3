package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// UserRepository persistencia de operadores. GetByID/GetByUsername devuelven nil, nil si no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	// SetActive activa o desactiva; ErrNotFound si el usuario no existe.
	SetActive(ctx context.Context, id string, active bool, at time.Time) error
	// SetRole cambia el rol; ErrNotFound si el usuario no existe.
	SetRole(ctx context.Context, id, role string, at time.Time) error
	TouchLogin(ctx context.Context, id string, at time.Time) error
}

package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// StockMoveRepo libro de movimientos en memoria (solo inserción).
type StockMoveRepo struct {
	s      *Store
	locked bool
}

// NewStockMoveRepository construye el repositorio.
func NewStockMoveRepository(s *Store) *StockMoveRepo {
	return &StockMoveRepo{s: s}
}

// Create agrega un movimiento.
func (r *StockMoveRepo) Create(_ context.Context, move *entity.StockMove) error {
	return r.s.write(r.locked, func() error {
		c := *move
		r.s.moves = append(r.s.moves, &c)
		return nil
	})
}

// List filtra por producto, tipo y rango de fechas; más recientes primero.
func (r *StockMoveRepo) List(_ context.Context, f entity.StockMoveFilter) ([]*entity.StockMove, error) {
	var list []*entity.StockMove
	r.s.read(r.locked, func() {
		for i := len(r.s.moves) - 1; i >= 0; i-- {
			m := r.s.moves[i]
			if f.ProductID != "" && m.ProductID != f.ProductID {
				continue
			}
			if f.MoveType != "" && m.MoveType != f.MoveType {
				continue
			}
			if f.From != nil && m.CreatedAt.Before(*f.From) {
				continue
			}
			if f.To != nil && m.CreatedAt.After(*f.To) {
				continue
			}
			c := *m
			list = append(list, &c)
		}
	})
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return paginate(list, f.Limit, f.Offset), nil
}

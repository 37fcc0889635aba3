package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo ajustes en memoria.
type AdjustmentRepo struct {
	s      *Store
	locked bool
}

// NewAdjustmentRepository construye el repositorio.
func NewAdjustmentRepository(s *Store) *AdjustmentRepo {
	return &AdjustmentRepo{s: s}
}

func cloneAdjustment(a *entity.Adjustment) *entity.Adjustment {
	c := *a
	if a.AppliedAt != nil {
		t := *a.AppliedAt
		c.AppliedAt = &t
	}
	if a.StockBefore != nil {
		v := *a.StockBefore
		c.StockBefore = &v
	}
	if a.StockAfter != nil {
		v := *a.StockAfter
		c.StockAfter = &v
	}
	return &c
}

// Create inserta un ajuste; la referencia es única.
func (r *AdjustmentRepo) Create(_ context.Context, adj *entity.Adjustment) error {
	return r.s.write(r.locked, func() error {
		if _, ok := r.s.adjustments[adj.ID]; ok {
			return fmt.Errorf("ajuste %s: %w", adj.ID, domain.ErrDuplicate)
		}
		for _, a := range r.s.adjustments {
			if a.Reference == adj.Reference {
				return fmt.Errorf("referencia %s: %w", adj.Reference, domain.ErrDuplicate)
			}
		}
		r.s.adjustments[adj.ID] = cloneAdjustment(adj)
		return nil
	})
}

// GetByID devuelve una copia del ajuste o nil.
func (r *AdjustmentRepo) GetByID(_ context.Context, id string) (*entity.Adjustment, error) {
	var out *entity.Adjustment
	r.s.read(r.locked, func() {
		if a, ok := r.s.adjustments[id]; ok {
			out = cloneAdjustment(a)
		}
	})
	return out, nil
}

// GetForUpdate equivale a GetByID: el TxRunner ya tiene el lock exclusivo.
func (r *AdjustmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.Adjustment, error) {
	return r.GetByID(ctx, id)
}

// GetRevertOf busca el ajuste compensatorio de originalID.
func (r *AdjustmentRepo) GetRevertOf(_ context.Context, originalID string) (*entity.Adjustment, error) {
	var out *entity.Adjustment
	r.s.read(r.locked, func() {
		for _, a := range r.s.adjustments {
			if a.RevertOf == originalID {
				out = cloneAdjustment(a)
				return
			}
		}
	})
	return out, nil
}

// Update reemplaza el ajuste completo.
func (r *AdjustmentRepo) Update(_ context.Context, adj *entity.Adjustment) error {
	return r.s.write(r.locked, func() error {
		if _, ok := r.s.adjustments[adj.ID]; !ok {
			return fmt.Errorf("ajuste %s: %w", adj.ID, domain.ErrNotFound)
		}
		r.s.adjustments[adj.ID] = cloneAdjustment(adj)
		return nil
	})
}

// List filtra y ordena por created_at descendente (número de referencia descendente como desempate).
func (r *AdjustmentRepo) List(_ context.Context, filter entity.AdjustmentFilter) ([]*entity.Adjustment, error) {
	var list []*entity.Adjustment
	r.s.read(r.locked, func() {
		for _, a := range r.s.adjustments {
			if filter.Matches(a) {
				list = append(list, cloneAdjustment(a))
			}
		}
	})
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return entity.ReferenceAfter(list[i].Reference, list[j].Reference)
	})
	return paginate(list, filter.Limit, filter.Offset), nil
}

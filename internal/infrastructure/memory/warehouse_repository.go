package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var (
	_ repository.WarehouseRepository = (*WarehouseRepo)(nil)
	_ repository.LocationRepository  = (*LocationRepo)(nil)
)

// WarehouseRepo bodegas en memoria.
type WarehouseRepo struct {
	s *Store
}

// NewWarehouseRepository construye el repositorio.
func NewWarehouseRepository(s *Store) *WarehouseRepo {
	return &WarehouseRepo{s: s}
}

// Create inserta una bodega; short_code es único.
func (r *WarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	return r.s.write(false, func() error {
		for _, o := range r.s.warehouses {
			if strings.EqualFold(o.ShortCode, w.ShortCode) {
				return fmt.Errorf("bodega %s: %w", w.ShortCode, domain.ErrDuplicate)
			}
		}
		c := *w
		r.s.warehouses[w.ID] = &c
		return nil
	})
}

// GetByID devuelve una copia de la bodega o nil.
func (r *WarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	var out *entity.Warehouse
	r.s.read(false, func() {
		if w, ok := r.s.warehouses[id]; ok {
			c := *w
			out = &c
		}
	})
	return out, nil
}

// GetByShortCode busca por código corto sin distinguir mayúsculas.
func (r *WarehouseRepo) GetByShortCode(_ context.Context, shortCode string) (*entity.Warehouse, error) {
	var out *entity.Warehouse
	r.s.read(false, func() {
		for _, w := range r.s.warehouses {
			if strings.EqualFold(w.ShortCode, shortCode) {
				c := *w
				out = &c
				return
			}
		}
	})
	return out, nil
}

// Update reemplaza la bodega.
func (r *WarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	return r.s.write(false, func() error {
		if _, ok := r.s.warehouses[w.ID]; !ok {
			return fmt.Errorf("bodega %s: %w", w.ID, domain.ErrNotFound)
		}
		c := *w
		r.s.warehouses[w.ID] = &c
		return nil
	})
}

// List ordena por nombre.
func (r *WarehouseRepo) List(_ context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	r.s.read(false, func() {
		for _, w := range r.s.warehouses {
			c := *w
			list = append(list, &c)
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

// Delete elimina una bodega sin ubicaciones ni ajustes asociados.
func (r *WarehouseRepo) Delete(_ context.Context, id string) error {
	return r.s.write(false, func() error {
		if _, ok := r.s.warehouses[id]; !ok {
			return fmt.Errorf("bodega %s: %w", id, domain.ErrNotFound)
		}
		for _, l := range r.s.locations {
			if l.WarehouseID == id {
				return fmt.Errorf("bodega %s tiene ubicaciones: %w", id, domain.ErrConflict)
			}
		}
		for _, a := range r.s.adjustments {
			if a.WarehouseID == id {
				return fmt.Errorf("bodega %s tiene ajustes: %w", id, domain.ErrConflict)
			}
		}
		delete(r.s.warehouses, id)
		return nil
	})
}

// LocationRepo ubicaciones en memoria.
type LocationRepo struct {
	s *Store
}

// NewLocationRepository construye el repositorio.
func NewLocationRepository(s *Store) *LocationRepo {
	return &LocationRepo{s: s}
}

// withWarehouseName copia la ubicación y completa el nombre de la bodega. Requiere el lock.
func (r *LocationRepo) withWarehouseName(l *entity.Location) *entity.Location {
	c := *l
	if w, ok := r.s.warehouses[l.WarehouseID]; ok {
		c.WarehouseName = w.Name
	}
	return &c
}

// Create inserta una ubicación; la bodega debe existir.
func (r *LocationRepo) Create(_ context.Context, l *entity.Location) error {
	return r.s.write(false, func() error {
		if _, ok := r.s.warehouses[l.WarehouseID]; !ok {
			return fmt.Errorf("bodega %s: %w", l.WarehouseID, domain.ErrNotFound)
		}
		c := *l
		r.s.locations[l.ID] = &c
		return nil
	})
}

// GetByID devuelve una copia de la ubicación o nil.
func (r *LocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	var out *entity.Location
	r.s.read(false, func() {
		if l, ok := r.s.locations[id]; ok {
			out = r.withWarehouseName(l)
		}
	})
	return out, nil
}

// Update reemplaza nombre y código corto.
func (r *LocationRepo) Update(_ context.Context, l *entity.Location) error {
	return r.s.write(false, func() error {
		cur, ok := r.s.locations[l.ID]
		if !ok {
			return fmt.Errorf("ubicación %s: %w", l.ID, domain.ErrNotFound)
		}
		c := *cur
		c.Name = l.Name
		c.ShortCode = l.ShortCode
		c.UpdatedAt = l.UpdatedAt
		r.s.locations[l.ID] = &c
		return nil
	})
}

// List ordena por bodega y nombre; warehouseID vacío lista todas.
func (r *LocationRepo) List(_ context.Context, warehouseID string, limit, offset int) ([]*entity.Location, error) {
	var list []*entity.Location
	r.s.read(false, func() {
		for _, l := range r.s.locations {
			if warehouseID != "" && l.WarehouseID != warehouseID {
				continue
			}
			list = append(list, r.withWarehouseName(l))
		}
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].WarehouseName != list[j].WarehouseName {
			return list[i].WarehouseName < list[j].WarehouseName
		}
		return list[i].Name < list[j].Name
	})
	return paginate(list, limit, offset), nil
}

// Delete elimina una ubicación sin ajustes asociados.
func (r *LocationRepo) Delete(_ context.Context, id string) error {
	return r.s.write(false, func() error {
		if _, ok := r.s.locations[id]; !ok {
			return fmt.Errorf("ubicación %s: %w", id, domain.ErrNotFound)
		}
		for _, a := range r.s.adjustments {
			if a.LocationID == id {
				return fmt.Errorf("ubicación %s tiene ajustes: %w", id, domain.ErrConflict)
			}
		}
		delete(r.s.locations, id)
		return nil
	})
}

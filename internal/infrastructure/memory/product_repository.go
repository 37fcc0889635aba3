package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	s      *Store
	locked bool
}

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

// Create inserta un producto; el código es único.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.s.write(r.locked, func() error {
		for _, p := range r.s.products {
			if strings.EqualFold(p.Code, product.Code) {
				return fmt.Errorf("producto %s: %w", product.Code, domain.ErrDuplicate)
			}
		}
		r.s.products[product.ID] = cloneProduct(product)
		return nil
	})
}

// GetByID devuelve una copia del producto o nil.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	r.s.read(r.locked, func() {
		if p, ok := r.s.products[id]; ok {
			out = cloneProduct(p)
		}
	})
	return out, nil
}

// GetByCode busca por código sin distinguir mayúsculas.
func (r *ProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	var out *entity.Product
	r.s.read(r.locked, func() {
		for _, p := range r.s.products {
			if strings.EqualFold(p.Code, code) {
				out = cloneProduct(p)
				return
			}
		}
	})
	return out, nil
}

// GetForUpdate equivale a GetByID dentro del TxRunner.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// Update actualiza nombre, costo y mínimo (el stock solo cambia con UpdateStock).
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.s.write(r.locked, func() error {
		cur, ok := r.s.products[product.ID]
		if !ok {
			return fmt.Errorf("producto %s: %w", product.ID, domain.ErrNotFound)
		}
		c := cloneProduct(cur)
		c.Name = product.Name
		c.Cost = product.Cost
		c.MinStockLevel = product.MinStockLevel
		c.UpdatedAt = product.UpdatedAt
		r.s.products[product.ID] = c
		return nil
	})
}

// UpdateCost actualiza el costo unitario.
func (r *ProductRepo) UpdateCost(_ context.Context, productID string, cost decimal.Decimal) error {
	return r.s.write(r.locked, func() error {
		cur, ok := r.s.products[productID]
		if !ok {
			return fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
		}
		c := cloneProduct(cur)
		c.Cost = cost
		c.UpdatedAt = time.Now()
		r.s.products[productID] = c
		return nil
	})
}

// UpdateStock fija el stock.
func (r *ProductRepo) UpdateStock(_ context.Context, productID string, stock int64) error {
	return r.s.write(r.locked, func() error {
		cur, ok := r.s.products[productID]
		if !ok {
			return fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
		}
		c := cloneProduct(cur)
		c.Stock = stock
		c.UpdatedAt = time.Now()
		r.s.products[productID] = c
		return nil
	})
}

// List ordena por código; search filtra por código o nombre.
func (r *ProductRepo) List(_ context.Context, search string, limit, offset int) ([]*entity.Product, error) {
	search = strings.ToLower(strings.TrimSpace(search))
	var list []*entity.Product
	r.s.read(r.locked, func() {
		for _, p := range r.s.products {
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Code), search) &&
				!strings.Contains(strings.ToLower(p.Name), search) {
				continue
			}
			list = append(list, cloneProduct(p))
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return paginate(list, limit, offset), nil
}

// ListLowStock ordena por déficit (mínimo - stock) descendente y luego por código.
func (r *ProductRepo) ListLowStock(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	r.s.read(r.locked, func() {
		for _, p := range r.s.products {
			if p.IsLowStock() {
				list = append(list, cloneProduct(p))
			}
		}
	})
	sort.Slice(list, func(i, j int) bool {
		di := list[i].MinStockLevel - list[i].Stock
		dj := list[j].MinStockLevel - list[j].Stock
		if di != dj {
			return di > dj
		}
		return list[i].Code < list[j].Code
	})
	return paginate(list, limit, offset), nil
}

// Summary totales sobre todos los productos.
func (r *ProductRepo) Summary(_ context.Context) (entity.StockSummary, error) {
	sum := entity.StockSummary{TotalValue: decimal.Zero}
	r.s.read(r.locked, func() {
		for _, p := range r.s.products {
			sum.TotalProducts++
			if p.IsLowStock() {
				sum.LowStockItems++
			}
			sum.TotalStock += p.Stock
			sum.TotalValue = sum.TotalValue.Add(p.Value())
		}
	})
	return sum, nil
}

// Delete elimina un producto sin ajustes ni movimientos.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	return r.s.write(r.locked, func() error {
		if _, ok := r.s.products[id]; !ok {
			return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
		}
		for _, a := range r.s.adjustments {
			if a.ProductID == id {
				return fmt.Errorf("producto %s tiene ajustes: %w", id, domain.ErrConflict)
			}
		}
		for _, m := range r.s.moves {
			if m.ProductID == id {
				return fmt.Errorf("producto %s tiene movimientos: %w", id, domain.ErrConflict)
			}
		}
		delete(r.s.products, id)
		return nil
	})
}

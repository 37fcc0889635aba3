package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, code, name, cost, stock, reserved, min_stock_level, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `INSERT INTO products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Code, p.Name, p.Cost, p.Stock, p.Reserved, p.MinStockLevel, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("producto %s: %w", p.Code, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Cost, &p.Stock, &p.Reserved, &p.MinStockLevel, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) getOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByCode obtiene un producto por código (sin distinguir mayúsculas).
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE LOWER(code) = LOWER($1)`, code)
}

// GetForUpdate obtiene el producto y bloquea la fila para update (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

// Update actualiza nombre, costo y mínimo. El stock se modifica solo con UpdateStock.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	if !validID(p.ID) {
		return fmt.Errorf("producto %s: %w", p.ID, domain.ErrNotFound)
	}
	query := `UPDATE products SET name = $2, cost = $3, min_stock_level = $4, updated_at = $5 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Cost, p.MinStockLevel, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("producto %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// UpdateCost actualiza el costo unitario.
func (r *ProductRepo) UpdateCost(ctx context.Context, productID string, cost decimal.Decimal) error {
	if !validID(productID) {
		return fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	_, err := r.q.Exec(ctx, `UPDATE products SET cost = $2, updated_at = $3 WHERE id = $1`, productID, cost, time.Now())
	if err != nil {
		return fmt.Errorf("update product cost: %w", err)
	}
	return nil
}

// UpdateStock fija el stock (la fila debe estar bloqueada por GetForUpdate en la misma tx).
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, stock int64) error {
	if !validID(productID) {
		return fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	cmd, err := r.q.Exec(ctx, `UPDATE products SET stock = $2, updated_at = $3 WHERE id = $1`, productID, stock, time.Now())
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	return nil
}

// List lista productos ordenados por código; search filtra por código o nombre (ILIKE).
func (r *ProductRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error) {
	var w whereBuilder
	if search != "" {
		w.args = append(w.args, "%"+search+"%")
		n := len(w.args)
		w.conds = append(w.conds, fmt.Sprintf("(code ILIKE $%d OR name ILIKE $%d)", n, n))
	}
	query := `SELECT ` + productColumns + ` FROM products` + w.sql() + ` ORDER BY code` + w.page(limit, offset)
	return r.query(ctx, query, w.args...)
}

// ListLowStock productos con mínimo configurado y stock <= mínimo, mayor déficit primero.
func (r *ProductRepo) ListLowStock(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	w := whereBuilder{conds: []string{"min_stock_level > 0", "stock <= min_stock_level"}}
	query := `SELECT ` + productColumns + ` FROM products` + w.sql() +
		` ORDER BY min_stock_level - stock DESC, code` + w.page(limit, offset)
	return r.query(ctx, query, w.args...)
}

func (r *ProductRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return list, nil
}

// Summary totales del catálogo: productos, faltantes, unidades y valorización a costo.
func (r *ProductRepo) Summary(ctx context.Context) (entity.StockSummary, error) {
	var s entity.StockSummary
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE min_stock_level > 0 AND stock <= min_stock_level),
		       COALESCE(SUM(stock), 0)::BIGINT,
		       COALESCE(SUM(stock * cost), 0)
		FROM products`,
	).Scan(&s.TotalProducts, &s.LowStockItems, &s.TotalStock, &s.TotalValue)
	if err != nil {
		return entity.StockSummary{}, fmt.Errorf("product summary: %w", err)
	}
	return s, nil
}

// Delete elimina un producto. Ajustes y movimientos lo referencian por FK: en ese caso ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("producto %s tiene ajustes o movimientos: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// StockMoveRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

// Create persiste un movimiento del libro de stock.
func (r *StockMoveRepo) Create(ctx context.Context, m *entity.StockMove) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_moves (id, reference, product_id, warehouse_id, location_id, move_type, qty_change, stock_before, stock_after, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Reference, m.ProductID, nullString(m.WarehouseID), nullString(m.LocationID),
		m.MoveType, m.QtyChange, m.StockBefore, m.StockAfter, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock move: %w", err)
	}
	return nil
}

// List lista movimientos por producto, tipo y rango de fechas; más recientes primero.
func (r *StockMoveRepo) List(ctx context.Context, f entity.StockMoveFilter) ([]*entity.StockMove, error) {
	if !validFilterIDs(f.ProductID) {
		return []*entity.StockMove{}, nil
	}
	var w whereBuilder
	if f.ProductID != "" {
		w.add("product_id = $%d", f.ProductID)
	}
	if f.MoveType != "" {
		w.add("move_type = $%d", f.MoveType)
	}
	if f.From != nil {
		w.add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		w.add("created_at <= $%d", *f.To)
	}
	query := `
		SELECT id, reference, product_id, COALESCE(warehouse_id::text, ''), COALESCE(location_id::text, ''),
		       move_type, qty_change, stock_before, stock_after, created_by, created_at
		FROM stock_moves` + w.sql() + ` ORDER BY created_at DESC` + w.page(f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list stock moves: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMove
	for rows.Next() {
		var m entity.StockMove
		if err := rows.Scan(
			&m.ID, &m.Reference, &m.ProductID, &m.WarehouseID, &m.LocationID,
			&m.MoveType, &m.QtyChange, &m.StockBefore, &m.StockAfter, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

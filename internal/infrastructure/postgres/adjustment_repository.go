package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

const adjustmentColumns = `id, reference, warehouse_id, location_id, product_id, product_code, product_name,
	current_stock, type, quantity, reason, note, status, warning, created_by, created_at,
	applied_by, applied_at, stock_before, stock_after, revert_of`

// AdjustmentRepo implementación del puerto AdjustmentRepository sobre PostgreSQL (usable con pool o tx).
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create persiste un ajuste nuevo.
func (r *AdjustmentRepo) Create(ctx context.Context, a *entity.Adjustment) error {
	query := `INSERT INTO adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Reference, a.WarehouseID, a.LocationID, a.ProductID, a.ProductCode, a.ProductName,
		a.CurrentStock, string(a.Type), a.Quantity, a.Reason, a.Note, string(a.Status), a.Warning,
		a.CreatedBy, a.CreatedAt, nullString(a.AppliedBy), a.AppliedAt, a.StockBefore, a.StockAfter,
		nullString(a.RevertOf),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("ajuste %s: %w", a.Reference, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

func scanAdjustment(row pgx.Row) (*entity.Adjustment, error) {
	var (
		a         entity.Adjustment
		typ, st   string
		appliedBy *string
		revertOf  *string
	)
	err := row.Scan(
		&a.ID, &a.Reference, &a.WarehouseID, &a.LocationID, &a.ProductID, &a.ProductCode, &a.ProductName,
		&a.CurrentStock, &typ, &a.Quantity, &a.Reason, &a.Note, &st, &a.Warning, &a.CreatedBy, &a.CreatedAt,
		&appliedBy, &a.AppliedAt, &a.StockBefore, &a.StockAfter, &revertOf,
	)
	if err != nil {
		return nil, err
	}
	a.Type = entity.AdjustmentType(typ)
	a.Status = entity.AdjustmentStatus(st)
	if appliedBy != nil {
		a.AppliedBy = *appliedBy
	}
	if revertOf != nil {
		a.RevertOf = *revertOf
	}
	return &a, nil
}

func (r *AdjustmentRepo) getOne(ctx context.Context, query, id string) (*entity.Adjustment, error) {
	if !validID(id) {
		return nil, nil
	}
	a, err := scanAdjustment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjustment: %w", err)
	}
	return a, nil
}

// GetByID obtiene un ajuste por ID.
func (r *AdjustmentRepo) GetByID(ctx context.Context, id string) (*entity.Adjustment, error) {
	return r.getOne(ctx, `SELECT `+adjustmentColumns+` FROM adjustments WHERE id = $1`, id)
}

// GetForUpdate obtiene el ajuste y bloquea la fila (SELECT FOR UPDATE).
func (r *AdjustmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.Adjustment, error) {
	return r.getOne(ctx, `SELECT `+adjustmentColumns+` FROM adjustments WHERE id = $1 FOR UPDATE`, id)
}

// GetRevertOf obtiene la reversión de originalID, si existe.
func (r *AdjustmentRepo) GetRevertOf(ctx context.Context, originalID string) (*entity.Adjustment, error) {
	return r.getOne(ctx, `SELECT `+adjustmentColumns+` FROM adjustments WHERE revert_of = $1`, originalID)
}

// Update persiste estado, advertencia y datos de aplicación. Los datos de creación no cambian.
func (r *AdjustmentRepo) Update(ctx context.Context, a *entity.Adjustment) error {
	if !validID(a.ID) {
		return fmt.Errorf("ajuste %s: %w", a.ID, domain.ErrNotFound)
	}
	query := `
		UPDATE adjustments
		SET status = $2, warning = $3, applied_by = $4, applied_at = $5, stock_before = $6, stock_after = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		a.ID, string(a.Status), a.Warning, nullString(a.AppliedBy), a.AppliedAt, a.StockBefore, a.StockAfter,
	)
	if err != nil {
		return fmt.Errorf("update adjustment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("ajuste %s: %w", a.ID, domain.ErrNotFound)
	}
	return nil
}

// referenceNumberSQL número final de la referencia; el texto ordena WH/ADJ/10000 antes que WH/ADJ/9999.
const referenceNumberSQL = `COALESCE(NULLIF(SUBSTRING(reference FROM '[0-9]+$'), '')::NUMERIC, 0)`

// List filtra con AND por campo y ordena por created_at descendente.
func (r *AdjustmentRepo) List(ctx context.Context, f entity.AdjustmentFilter) ([]*entity.Adjustment, error) {
	if !validFilterIDs(f.WarehouseID, f.LocationID, f.ProductID) {
		return []*entity.Adjustment{}, nil
	}
	var w whereBuilder
	if f.Type != "" {
		w.add("type = $%d", string(f.Type))
	}
	if f.Status != "" {
		w.add("status = $%d", string(f.Status))
	}
	if f.WarehouseID != "" {
		w.add("warehouse_id = $%d", f.WarehouseID)
	}
	if f.LocationID != "" {
		w.add("location_id = $%d", f.LocationID)
	}
	if f.ProductID != "" {
		w.add("product_id = $%d", f.ProductID)
	}
	if f.From != nil {
		w.add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		w.add("created_at <= $%d", *f.To)
	}
	query := `SELECT ` + adjustmentColumns + ` FROM adjustments` + w.sql() +
		` ORDER BY created_at DESC, ` + referenceNumberSQL + ` DESC, reference DESC` + w.page(f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Adjustment
	for rows.Next() {
		a, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationSelect = `
	SELECT l.id, l.warehouse_id, w.name, l.name, l.short_code, l.created_at, l.updated_at
	FROM locations l JOIN warehouses w ON w.id = l.warehouse_id`

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	if err := row.Scan(&l.ID, &l.WarehouseID, &l.WarehouseName, &l.Name, &l.ShortCode, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste una ubicación.
func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	if !validID(l.WarehouseID) {
		return fmt.Errorf("bodega %s: %w", l.WarehouseID, domain.ErrNotFound)
	}
	query := `
		INSERT INTO locations (id, warehouse_id, name, short_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, l.ID, l.WarehouseID, l.Name, l.ShortCode, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("bodega %s: %w", l.WarehouseID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación con el nombre de su bodega.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	if !validID(id) {
		return nil, nil
	}
	l, err := scanLocation(r.q.QueryRow(ctx, locationSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// Update actualiza nombre y código corto.
func (r *LocationRepo) Update(ctx context.Context, l *entity.Location) error {
	if !validID(l.ID) {
		return fmt.Errorf("ubicación %s: %w", l.ID, domain.ErrNotFound)
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE locations SET name = $2, short_code = $3, updated_at = $4 WHERE id = $1`,
		l.ID, l.Name, l.ShortCode, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("ubicación %s: %w", l.ID, domain.ErrNotFound)
	}
	return nil
}

// List lista ubicaciones, opcionalmente filtradas por bodega.
func (r *LocationRepo) List(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.Location, error) {
	if !validFilterIDs(warehouseID) {
		return []*entity.Location{}, nil
	}
	var w whereBuilder
	if warehouseID != "" {
		w.add("l.warehouse_id = $%d", warehouseID)
	}
	query := locationSelect + w.sql() + ` ORDER BY w.name, l.name` + w.page(limit, offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Delete elimina una ubicación. Con ajustes asociados devuelve ErrConflict.
func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("ubicación %s: %w", id, domain.ErrNotFound)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("ubicación %s en uso: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("ubicación %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

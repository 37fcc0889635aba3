package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noSQL falla el test si un repositorio llega a enviar una consulta.
type noSQL struct{ t *testing.T }

func (q noSQL) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.t.Fatalf("consulta inesperada: %s", sql)
	return pgconn.CommandTag{}, nil
}

func (q noSQL) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.t.Fatalf("consulta inesperada: %s", sql)
	return nil, nil
}

func (q noSQL) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.t.Fatalf("consulta inesperada: %s", sql)
	return nil
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("0b5f4a1e-6c1d-4d7e-9a3b-2f1c8e7d6a50"))
	assert.False(t, validID("nope"))
	assert.False(t, validID(""))
	assert.True(t, validFilterIDs("", "0b5f4a1e-6c1d-4d7e-9a3b-2f1c8e7d6a50"))
	assert.False(t, validFilterIDs("", "prod-1"))
}

func TestIsInvalidText(t *testing.T) {
	assert.True(t, isInvalidText(fmt.Errorf("get adjustment: %w", &pgconn.PgError{Code: "22P02"})))
	assert.False(t, isInvalidText(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isInvalidText(errors.New("22P02")))
}

func TestRepos_IDMalformadoEsNoEncontrado(t *testing.T) {
	ctx := context.Background()
	q := noSQL{t}

	adjustments := NewAdjustmentRepository(q)
	adj, err := adjustments.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, adj)
	adj, err = adjustments.GetForUpdate(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, adj)
	err = adjustments.Update(ctx, &entity.Adjustment{ID: "nope"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	list, err := adjustments.List(ctx, entity.AdjustmentFilter{ProductID: "nope"})
	require.NoError(t, err)
	assert.Empty(t, list)

	products := NewProductRepository(q)
	p, err := products.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, p)
	p, err = products.GetForUpdate(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.True(t, errors.Is(products.UpdateStock(ctx, "nope", 1), domain.ErrNotFound))
	assert.True(t, errors.Is(products.Delete(ctx, "nope"), domain.ErrNotFound))

	warehouses := NewWarehouseRepository(q)
	w, err := warehouses.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.True(t, errors.Is(warehouses.Delete(ctx, "nope"), domain.ErrNotFound))

	locations := NewLocationRepository(q)
	l, err := locations.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, l)
	locs, err := locations.List(ctx, "nope", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, locs)

	moves, err := NewStockMoveRepository(q).List(ctx, entity.StockMoveFilter{ProductID: "nope"})
	require.NoError(t, err)
	assert.Empty(t, moves)

	users := NewUserRepository(q)
	u, err := users.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.True(t, errors.Is(users.SetActive(ctx, "nope", false, time.Now()), domain.ErrNotFound))
	assert.True(t, errors.Is(users.SetRole(ctx, "nope", entity.RoleAdmin, time.Now()), domain.ErrNotFound))
}

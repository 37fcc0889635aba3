package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
)

func newReplenishment(t *testing.T) *inventory.ReplenishmentUseCase {
	t.Helper()
	ctx := context.Background()
	products := memory.NewProductRepository(memory.NewStore())
	seed := []struct {
		id, code   string
		stock, min int64
		cost       int64
	}{
		{"p1", "A", 2, 10, 4}, // déficit 8
		{"p2", "B", 5, 5, 1},  // en el mínimo, déficit 0
		{"p3", "C", 50, 10, 2},
		{"p4", "D", 0, 0, 3},  // sin mínimo: nunca es faltante
		{"p5", "E", -3, 4, 1}, // déficit 7
	}
	for _, s := range seed {
		require.NoError(t, products.Create(ctx, &entity.Product{
			ID: s.id, Code: s.code, Name: s.code, Cost: decimal.NewFromInt(s.cost), MinStockLevel: s.min,
		}))
		require.NoError(t, products.UpdateStock(ctx, s.id, s.stock))
	}
	return inventory.NewReplenishmentUseCase(products)
}

func TestReplenishment_Dashboard(t *testing.T) {
	uc := newReplenishment(t)
	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), out.TotalProducts)
	assert.Equal(t, int64(3), out.LowStockItems)
	assert.Equal(t, int64(54), out.TotalStock, "2 + 5 + 50 + 0 - 3")
	assert.True(t, decimal.NewFromInt(110).Equal(out.TotalValue), "8 + 5 + 100 + 0 - 3")
}

func TestReplenishment_LowStockOrdenYSugerencia(t *testing.T) {
	uc := newReplenishment(t)
	out, err := uc.LowStock(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	first := out.Items[0]
	assert.Equal(t, "A", first.Code)
	assert.Equal(t, 1, first.Priority)
	assert.Equal(t, int64(15), first.IdealStock)
	assert.Equal(t, int64(13), first.SuggestedQty)
	assert.True(t, decimal.NewFromInt(52).Equal(first.EstimatedCost))

	assert.Equal(t, "E", out.Items[1].Code)
	assert.Equal(t, int64(9), out.Items[1].SuggestedQty, "ideal 6 desde stock -3")
	assert.Equal(t, "B", out.Items[2].Code)
	assert.Equal(t, int64(3), out.Items[2].SuggestedQty, "ideal ceil(7.5)=8 desde 5")

	page, err := uc.LowStock(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "E", page.Items[0].Code)
	assert.Equal(t, 2, page.Items[0].Priority, "la prioridad continúa entre páginas")
	assert.True(t, page.Page.HasMore)
}

func TestIdealStock(t *testing.T) {
	assert.Equal(t, int64(0), inventory.IdealStock(0))
	assert.Equal(t, int64(2), inventory.IdealStock(1))
	assert.Equal(t, int64(8), inventory.IdealStock(5))
	assert.Equal(t, int64(15), inventory.IdealStock(10))
}

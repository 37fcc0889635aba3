package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

const (
	warehouseID = "wh-1"
	locationID  = "loc-1"
	productID   = "prod-1"
)

type fixture struct {
	uc       *inventory.AdjustmentUseCase
	products *memory.ProductRepo
	moves    *memory.StockMoveRepo
	ctx      context.Context
}

// newFixture arma el caso de uso sobre el store en memoria con un producto en stock.
func newFixture(t *testing.T, stock int64, cfg inventory.Config) *fixture {
	t.Helper()
	ctx := inventory.WithActor(context.Background(), "ana")
	store := memory.NewStore()
	warehouses := memory.NewWarehouseRepository(store)
	locations := memory.NewLocationRepository(store)
	products := memory.NewProductRepository(store)

	now := time.Now()
	require.NoError(t, warehouses.Create(ctx, &entity.Warehouse{ID: warehouseID, Name: "Principal", ShortCode: "WH", CreatedAt: now}))
	require.NoError(t, warehouses.Create(ctx, &entity.Warehouse{ID: "wh-2", Name: "Secundaria", ShortCode: "WH2", CreatedAt: now}))
	require.NoError(t, locations.Create(ctx, &entity.Location{ID: locationID, WarehouseID: warehouseID, Name: "Stock", ShortCode: "STK"}))
	require.NoError(t, locations.Create(ctx, &entity.Location{ID: "loc-2", WarehouseID: "wh-2", Name: "Stock", ShortCode: "STK"}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: productID, Code: "DESK-001", Name: "Escritorio", Cost: decimal.NewFromInt(10)}))
	require.NoError(t, products.UpdateStock(ctx, productID, stock))

	moves := memory.NewStockMoveRepository(store)
	uc := inventory.NewAdjustmentUseCase(
		memory.NewTxRunner(store),
		memory.NewAdjustmentRepository(store),
		products, warehouses, locations,
		memory.NewSequence(), cfg, logger.Nop(),
	)
	return &fixture{uc: uc, products: products, moves: moves, ctx: ctx}
}

func (f *fixture) create(t *testing.T, typ string, qty int64) *entity.Adjustment {
	t.Helper()
	adj, err := f.uc.Create(f.ctx, dto.CreateAdjustmentRequest{
		WarehouseID: warehouseID,
		LocationID:  locationID,
		ProductID:   productID,
		Type:        typ,
		Quantity:    qty,
		Reason:      entity.ReasonCountCorrection,
	})
	require.NoError(t, err)
	return adj
}

func (f *fixture) stock(t *testing.T) int64 {
	t.Helper()
	p, err := f.products.GetByID(f.ctx, productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func TestCreate_DraftConReferenciaYActor(t *testing.T) {
	f := newFixture(t, 45, inventory.Config{})
	adj := f.create(t, "ADD", 5)

	assert.Equal(t, "WH/ADJ/0001", adj.Reference)
	assert.Equal(t, entity.AdjustmentStatusDraft, adj.Status)
	assert.Equal(t, "ana", adj.CreatedBy)
	assert.Equal(t, "DESK-001", adj.ProductCode)
	assert.Equal(t, int64(45), adj.CurrentStock)
	assert.False(t, adj.Warning)
	assert.Equal(t, int64(45), f.stock(t), "crear no modifica el stock")
}

func TestCreate_ReferenciasEstrictamenteCrecientes(t *testing.T) {
	f := newFixture(t, 10, inventory.Config{ReferencePrefix: "BOD/AJ/"})
	var refs []string
	for i := 0; i < 3; i++ {
		refs = append(refs, f.create(t, "ADD", 1).Reference)
	}
	assert.Equal(t, []string{"BOD/AJ/0001", "BOD/AJ/0002", "BOD/AJ/0003"}, refs)
}

func TestCreate_ReferenciasUnicasEnConcurrencia(t *testing.T) {
	f := newFixture(t, 10, inventory.Config{})
	const n = 20
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		refs = map[string]bool{}
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			adj, err := f.uc.Create(f.ctx, dto.CreateAdjustmentRequest{
				WarehouseID: warehouseID, LocationID: locationID, ProductID: productID,
				Type: "ADD", Quantity: 1, Reason: entity.ReasonFound,
			})
			if err != nil {
				return
			}
			mu.Lock()
			refs[adj.Reference] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, refs, n)
}

func TestCreate_ProyeccionNegativaQuedaPending(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	adj := f.create(t, "REMOVE", 50)

	assert.Equal(t, entity.AdjustmentStatusPending, adj.Status)
	assert.True(t, adj.Warning)
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	tests := []struct {
		name  string
		in    dto.CreateAdjustmentRequest
		field string
	}{
		{"cantidad cero", dto.CreateAdjustmentRequest{WarehouseID: warehouseID, LocationID: locationID, ProductID: productID, Type: "ADD", Quantity: 0, Reason: "x"}, "quantity"},
		{"cantidad negativa", dto.CreateAdjustmentRequest{WarehouseID: warehouseID, LocationID: locationID, ProductID: productID, Type: "ADD", Quantity: -3, Reason: "x"}, "quantity"},
		{"tipo desconocido", dto.CreateAdjustmentRequest{WarehouseID: warehouseID, LocationID: locationID, ProductID: productID, Type: "MOVE", Quantity: 1, Reason: "x"}, "type"},
		{"sin motivo", dto.CreateAdjustmentRequest{WarehouseID: warehouseID, LocationID: locationID, ProductID: productID, Type: "ADD", Quantity: 1}, "reason"},
		{"producto inexistente", dto.CreateAdjustmentRequest{WarehouseID: warehouseID, LocationID: locationID, ProductID: "nope", Type: "ADD", Quantity: 1, Reason: "x"}, "product_id"},
		{"ubicación de otra bodega", dto.CreateAdjustmentRequest{WarehouseID: warehouseID, LocationID: "loc-2", ProductID: productID, Type: "ADD", Quantity: 1, Reason: "x"}, "location_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Create(f.ctx, tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			var fields []string
			for _, fe := range verr.Fields {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestApply_AddYRevertVuelveAlStockInicial(t *testing.T) {
	f := newFixture(t, 45, inventory.Config{})
	adj := f.create(t, "ADD", 5)

	applied, err := f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.AdjustmentStatusApplied, applied.Status)
	assert.Equal(t, "ana", applied.AppliedBy)
	require.NotNil(t, applied.AppliedAt)
	assert.Equal(t, int64(45), *applied.StockBefore)
	assert.Equal(t, int64(50), *applied.StockAfter)
	assert.Equal(t, int64(50), f.stock(t))

	rev, err := f.uc.Revert(f.ctx, adj.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AdjustmentTypeRemove, rev.Type)
	assert.Equal(t, int64(5), rev.Quantity)
	assert.Equal(t, "Revert of WH/ADJ/0001", rev.Reason)
	assert.Equal(t, "WH/ADJ/0002", rev.Reference)
	assert.Equal(t, adj.ID, rev.RevertOf)
	assert.Equal(t, entity.AdjustmentStatusApplied, rev.Status)
	assert.Equal(t, int64(45), f.stock(t))

	orig, err := f.uc.GetByID(f.ctx, adj.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AdjustmentStatusApplied, orig.Status, "el original no cambia al revertir")

	moves, err := f.moves.List(f.ctx, entity.StockMoveFilter{ProductID: productID})
	require.NoError(t, err)
	require.Len(t, moves, 2)
	var total int64
	for _, m := range moves {
		assert.Equal(t, entity.MoveTypeAdjust, m.MoveType)
		total += m.QtyChange
	}
	assert.Equal(t, int64(0), total)
}

func TestApply_UsaStockVigenteNoElDeCreacion(t *testing.T) {
	f := newFixture(t, 10, inventory.Config{})
	first := f.create(t, "ADD", 5)
	second := f.create(t, "REMOVE", 3)
	assert.Equal(t, int64(10), second.CurrentStock)

	_, err := f.uc.Apply(f.ctx, first.ID, inventory.ApplyOptions{})
	require.NoError(t, err)
	applied, err := f.uc.Apply(f.ctx, second.ID, inventory.ApplyOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(15), *applied.StockBefore)
	assert.Equal(t, int64(12), f.stock(t))
}

func TestApply_CorrectionYSegundaAplicacionFalla(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	adj := f.create(t, "CORRECTION", 5)

	_, err := f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), f.stock(t))

	_, err = f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidState))
	assert.Equal(t, int64(5), f.stock(t), "el stock no cambia en el segundo intento")
}

func TestApply_PendingDejaStockNegativoConWarning(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	adj := f.create(t, "REMOVE", 50)

	applied, err := f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(-30), f.stock(t))
	assert.True(t, applied.Warning)
}

func TestApply_PendingConStockRecuperadoLimpiaWarning(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	pending := f.create(t, "REMOVE", 30)
	require.Equal(t, entity.AdjustmentStatusPending, pending.Status)
	require.True(t, pending.Warning)

	refill := f.create(t, "ADD", 100)
	_, err := f.uc.Apply(f.ctx, refill.ID, inventory.ApplyOptions{})
	require.NoError(t, err)

	applied, err := f.uc.Apply(f.ctx, pending.ID, inventory.ApplyOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.AdjustmentStatusApplied, applied.Status)
	require.NotNil(t, applied.StockAfter)
	assert.Equal(t, int64(90), *applied.StockAfter)
	assert.False(t, applied.Warning, "el stock resultante no es negativo")
}

func TestApply_PendingRequiereOverrideSiEstaConfigurado(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{PendingRequiresOverride: true})
	adj := f.create(t, "REMOVE", 50)

	_, err := f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidState))
	assert.Equal(t, int64(20), f.stock(t))

	_, err = f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{Override: true})
	require.NoError(t, err)
	assert.Equal(t, int64(-30), f.stock(t))
}

func TestApply_NoExiste(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	_, err := f.uc.Apply(f.ctx, "nope", inventory.ApplyOptions{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCreate_ApplyNowAplicaInmediatamente(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{PendingRequiresOverride: true})
	adj, err := f.uc.Create(f.ctx, dto.CreateAdjustmentRequest{
		WarehouseID: warehouseID, LocationID: locationID, ProductID: productID,
		Type: "REMOVE", Quantity: 25, Reason: entity.ReasonDamaged, ApplyNow: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AdjustmentStatusApplied, adj.Status)
	assert.Equal(t, int64(-5), f.stock(t))
}

func TestCancel(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	adj := f.create(t, "REMOVE", 5)

	cancelled, err := f.uc.Cancel(f.ctx, adj.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AdjustmentStatusCancelled, cancelled.Status)
	assert.Equal(t, int64(20), f.stock(t))

	_, err = f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{})
	assert.True(t, errors.Is(err, domain.ErrInvalidState), "un ajuste cancelado no se aplica")

	_, err = f.uc.Cancel(f.ctx, adj.ID)
	assert.True(t, errors.Is(err, domain.ErrInvalidState))

	_, err = f.uc.Revert(f.ctx, adj.ID)
	assert.True(t, errors.Is(err, domain.ErrInvalidState), "solo se revierten ajustes aplicados")
}

func TestRevert_SoloUnaVez(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	adj := f.create(t, "REMOVE", 5)
	_, err := f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{})
	require.NoError(t, err)

	_, err = f.uc.Revert(f.ctx, adj.ID)
	require.NoError(t, err)
	_, err = f.uc.Revert(f.ctx, adj.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidState))
	assert.Equal(t, int64(20), f.stock(t))
}

func TestRevert_CorrectionRestauraStockPrevio(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	adj := f.create(t, "CORRECTION", 5)
	_, err := f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{})
	require.NoError(t, err)

	rev, err := f.uc.Revert(f.ctx, adj.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AdjustmentTypeCorrection, rev.Type)
	assert.Equal(t, int64(20), rev.Quantity)
	assert.Equal(t, int64(20), f.stock(t))
}

func TestRevert_CorrectionRestauraStockCero(t *testing.T) {
	f := newFixture(t, 0, inventory.Config{})
	adj := f.create(t, "CORRECTION", 5)
	_, err := f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{})
	require.NoError(t, err)

	rev, err := f.uc.Revert(f.ctx, adj.ID)
	require.NoError(t, err, "un stock previo de cero se puede restaurar")
	assert.Equal(t, entity.AdjustmentTypeCorrection, rev.Type)
	assert.Equal(t, int64(0), rev.Quantity)
	assert.Equal(t, int64(0), f.stock(t))
}

func TestRevert_CorrectionModoLegacy(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{RevertCorrectionMode: inventory.RevertModeLegacy})
	adj := f.create(t, "CORRECTION", 5)
	_, err := f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{})
	require.NoError(t, err)

	rev, err := f.uc.Revert(f.ctx, adj.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AdjustmentTypeCorrection, rev.Type)
	assert.Equal(t, int64(5), rev.Quantity, "legacy repite la cantidad original")
	assert.Equal(t, int64(5), f.stock(t))
}

func TestRevert_CorrectionConStockPrevioNegativoFalla(t *testing.T) {
	f := newFixture(t, 2, inventory.Config{})
	remove := f.create(t, "REMOVE", 10)
	_, err := f.uc.Apply(f.ctx, remove.ID, inventory.ApplyOptions{})
	require.NoError(t, err)
	require.Equal(t, int64(-8), f.stock(t))

	corr := f.create(t, "CORRECTION", 3)
	_, err = f.uc.Apply(f.ctx, corr.ID, inventory.ApplyOptions{})
	require.NoError(t, err)

	_, err = f.uc.Revert(f.ctx, corr.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidState), "no se puede restaurar un stock previo negativo")
	assert.Equal(t, int64(3), f.stock(t))
}

func TestRevert_ActorPorDefectoEsSystem(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	adj := f.create(t, "ADD", 1)
	_, err := f.uc.Apply(f.ctx, adj.ID, inventory.ApplyOptions{})
	require.NoError(t, err)

	rev, err := f.uc.Revert(context.Background(), adj.ID)
	require.NoError(t, err)
	assert.Equal(t, inventory.SystemActor, rev.CreatedBy)
	assert.Equal(t, inventory.SystemActor, rev.AppliedBy)
}

func TestBulkApply(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	a := f.create(t, "ADD", 5)
	b := f.create(t, "REMOVE", 100) // Pending
	c := f.create(t, "REMOVE", 3)
	d := f.create(t, "ADD", 1)
	_, err := f.uc.Cancel(f.ctx, c.ID)
	require.NoError(t, err)
	_, err = f.uc.Apply(f.ctx, d.ID, inventory.ApplyOptions{})
	require.NoError(t, err)

	res := f.uc.BulkApply(f.ctx, []string{a.ID, b.ID, c.ID, d.ID, "nope", a.ID})

	require.Len(t, res.Applied, 1)
	assert.Equal(t, a.ID, res.Applied[0].ID)
	assert.Equal(t, a.Reference, res.Applied[0].Reference)

	skipped := map[string]string{}
	for _, it := range res.Skipped {
		skipped[it.ID] = it.Reason
	}
	assert.Len(t, skipped, 3)
	assert.Contains(t, skipped[b.ID], "revisión")
	assert.Contains(t, skipped[c.ID], string(entity.AdjustmentStatusCancelled))
	assert.Contains(t, skipped[d.ID], string(entity.AdjustmentStatusApplied))

	require.Len(t, res.Failed, 1)
	assert.Equal(t, "nope", res.Failed[0].ID)

	assert.Equal(t, int64(26), f.stock(t), "20 + 1 (d) + 5 (a)")
}

func TestBulkApply_RespetaElOrdenDeEntrada(t *testing.T) {
	type step struct {
		typ string
		qty int64
	}
	tests := []struct {
		name  string
		first step
		last  step
		want  int64
	}{
		{"corrección y luego suma", step{"CORRECTION", 5}, step{"ADD", 3}, 8},
		{"suma y luego corrección", step{"ADD", 3}, step{"CORRECTION", 5}, 5},
		{"resta y luego corrección", step{"REMOVE", 4}, step{"CORRECTION", 7}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 20, inventory.Config{})
			d1 := f.create(t, tt.first.typ, tt.first.qty)
			d2 := f.create(t, "ADD", 2)
			_, err := f.uc.Apply(f.ctx, d2.ID, inventory.ApplyOptions{})
			require.NoError(t, err)
			d3 := f.create(t, tt.last.typ, tt.last.qty)

			res := f.uc.BulkApply(f.ctx, []string{d1.ID, d2.ID, d3.ID})

			require.Len(t, res.Applied, 2)
			assert.Equal(t, d1.ID, res.Applied[0].ID)
			assert.Equal(t, d3.ID, res.Applied[1].ID)
			require.Len(t, res.Skipped, 1)
			assert.Equal(t, d2.ID, res.Skipped[0].ID)
			assert.Empty(t, res.Failed)
			assert.Equal(t, tt.want, f.stock(t))
		})
	}
}

func TestBulkApply_ListaVaciaDevuelveSlicesVacios(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	res := f.uc.BulkApply(f.ctx, nil)
	assert.NotNil(t, res.Applied)
	assert.NotNil(t, res.Skipped)
	assert.NotNil(t, res.Failed)
}

func TestPreview(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	p, err := f.uc.Preview(f.ctx, dto.PreviewAdjustmentRequest{ProductID: productID, Type: "REMOVE", Quantity: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(20), p.Current)
	assert.Equal(t, int64(-30), p.Projected)
	assert.True(t, p.IsNegative)
	assert.Equal(t, int64(20), f.stock(t))

	_, err = f.uc.Preview(f.ctx, dto.PreviewAdjustmentRequest{ProductID: "nope", Type: "ADD", Quantity: 1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestList_FiltrosYOrden(t *testing.T) {
	f := newFixture(t, 20, inventory.Config{})
	for i := 0; i < 3; i++ {
		f.create(t, "ADD", int64(i+1))
	}
	rem := f.create(t, "REMOVE", 1)
	_, err := f.uc.Apply(f.ctx, rem.ID, inventory.ApplyOptions{})
	require.NoError(t, err)

	all, err := f.uc.List(f.ctx, entity.AdjustmentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "WH/ADJ/0004", all[0].Reference, "más reciente primero")

	adds, err := f.uc.List(f.ctx, entity.AdjustmentFilter{Type: entity.AdjustmentTypeAdd, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, adds, 2)

	applied, err := f.uc.List(f.ctx, entity.AdjustmentFilter{Status: entity.AdjustmentStatusApplied})
	require.NoError(t, err)
	require.Len(t, applied, 1)
	assert.Equal(t, rem.ID, applied[0].ID)
}

func ExampleAdjustmentUseCase_Revert() {
	ctx := context.Background()
	store := memory.NewStore()
	warehouses := memory.NewWarehouseRepository(store)
	locations := memory.NewLocationRepository(store)
	products := memory.NewProductRepository(store)
	_ = warehouses.Create(ctx, &entity.Warehouse{ID: "w", Name: "WH", ShortCode: "WH"})
	_ = locations.Create(ctx, &entity.Location{ID: "l", WarehouseID: "w", Name: "Stock"})
	_ = products.Create(ctx, &entity.Product{ID: "p", Code: "DESK", Name: "Escritorio"})
	_ = products.UpdateStock(ctx, "p", 45)

	uc := inventory.NewAdjustmentUseCase(
		memory.NewTxRunner(store), memory.NewAdjustmentRepository(store),
		products, warehouses, locations, memory.NewSequence(), inventory.Config{}, logger.Nop(),
	)
	adj, _ := uc.Create(ctx, dto.CreateAdjustmentRequest{
		WarehouseID: "w", LocationID: "l", ProductID: "p",
		Type: "ADD", Quantity: 5, Reason: entity.ReasonFound, ApplyNow: true,
	})
	fmt.Println(adj.Reference, *adj.StockAfter)
	rev, _ := uc.Revert(ctx, adj.ID)
	fmt.Println(rev.Reference, rev.Type, *rev.StockAfter)
	// Output:
	// WH/ADJ/0001 50
	// WH/ADJ/0002 REMOVE 45
}

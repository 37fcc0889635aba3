package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
)

func TestWarehouseUseCase_ShortCodeUnicoEnMayusculas(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWarehouseUseCase(memory.NewWarehouseRepository(memory.NewStore()))

	w, err := uc.Create(ctx, dto.CreateWarehouseRequest{Name: "Principal", ShortCode: " wh "})
	require.NoError(t, err)
	assert.Equal(t, "WH", w.ShortCode)

	_, err = uc.Create(ctx, dto.CreateWarehouseRequest{Name: "Otra", ShortCode: "Wh"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	other, err := uc.Create(ctx, dto.CreateWarehouseRequest{Name: "Otra", ShortCode: "WH2"})
	require.NoError(t, err)
	code := "wh"
	_, err = uc.Update(ctx, other.ID, dto.UpdateWarehouseRequest{ShortCode: &code})
	assert.True(t, errors.Is(err, domain.ErrDuplicate), "no puede tomar el código de otra bodega")

	name := "Central"
	updated, err := uc.Update(ctx, w.ID, dto.UpdateWarehouseRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Central", updated.Name)

	missing, err := uc.Update(ctx, "nope", dto.UpdateWarehouseRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWarehouseUseCase_ValidaCampos(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(memory.NewWarehouseRepository(memory.NewStore()))
	_, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestLocationUseCase_BodegaDebeExistir(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	warehouses := memory.NewWarehouseRepository(store)
	uc := usecase.NewLocationUseCase(memory.NewLocationRepository(store), warehouses)

	_, err := uc.Create(ctx, dto.CreateLocationRequest{WarehouseID: "nope", Name: "Stock", ShortCode: "stk"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	require.NoError(t, warehouses.Create(ctx, &entity.Warehouse{ID: "w1", Name: "Principal", ShortCode: "WH"}))
	loc, err := uc.Create(ctx, dto.CreateLocationRequest{WarehouseID: "w1", Name: "Stock", ShortCode: "stk"})
	require.NoError(t, err)
	assert.Equal(t, "STK", loc.ShortCode)
	assert.Equal(t, "Principal", loc.WarehouseName)

	list, err := uc.List(ctx, "w1", 20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestProductUseCase_CrearActualizarYBuscar(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()))

	p, err := uc.Create(ctx, dto.CreateProductRequest{Code: "DESK-001", Name: "Escritorio", Cost: decimal.NewFromInt(120)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Stock, "el stock inicial es cero")

	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "desk-001", Name: "Otro"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "NEG", Name: "Negativo", Cost: decimal.NewFromInt(-1)})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	cost := decimal.RequireFromString("99.50")
	updated, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{Cost: &cost})
	require.NoError(t, err)
	assert.True(t, cost.Equal(updated.Cost))
	assert.Equal(t, "Escritorio", updated.Name)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "CHAIR-01", Name: "Silla"})
	require.NoError(t, err)
	list, err := uc.List(ctx, "escri", 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "DESK-001", list.Items[0].Code)
}

func TestStockUseCase_ValorizacionYMovimientos(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	moves := memory.NewStockMoveRepository(store)
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p1", Code: "A", Name: "A", Cost: decimal.RequireFromString("2.5"), Reserved: 4}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p2", Code: "B", Name: "B", Cost: decimal.NewFromInt(10)}))
	require.NoError(t, products.UpdateStock(ctx, "p1", 10))
	require.NoError(t, products.UpdateStock(ctx, "p2", 3))

	day := time.Date(2026, 5, 4, 15, 0, 0, 0, time.UTC)
	require.NoError(t, moves.Create(ctx, &entity.StockMove{ID: "m1", ProductID: "p1", MoveType: entity.MoveTypeAdjust, QtyChange: 10, CreatedAt: day}))
	require.NoError(t, moves.Create(ctx, &entity.StockMove{ID: "m2", ProductID: "p2", MoveType: entity.MoveTypeAdjust, QtyChange: 3, CreatedAt: day.AddDate(0, 0, 2)}))

	uc := usecase.NewStockUseCase(products, moves)
	stock, err := uc.ListStock(ctx, "", 20, 0)
	require.NoError(t, err)
	require.Len(t, stock.Items, 2)
	assert.Equal(t, int64(6), stock.Items[0].FreeToUse)
	assert.True(t, decimal.NewFromInt(25).Equal(stock.Items[0].Value))
	assert.True(t, decimal.NewFromInt(55).Equal(stock.TotalValue))

	list, err := uc.ListMoves(ctx, dto.MoveFilterRequest{MoveType: "ALL", From: "2026-05-04", To: "2026-05-04"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1, "el rango de un día incluye todo el día")
	assert.Equal(t, "m1", list.Items[0].ID)

	_, err = uc.ListMoves(ctx, dto.MoveFilterRequest{From: "04/05/2026"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestParseDateParam(t *testing.T) {
	got, err := usecase.ParseDateParam("", false)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = usecase.ParseDateParam("2026-01-31", true)
	require.NoError(t, err)
	assert.Equal(t, 23, got.Hour())

	got, err = usecase.ParseDateParam("2026-01-31T10:00:00Z", true)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour(), "RFC3339 se respeta tal cual")

	_, err = usecase.ParseDateParam("ayer", false)
	assert.Error(t, err)
}

func TestWarehouseUseCase_DeleteConUbicacionesEsConflicto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	warehouses := memory.NewWarehouseRepository(store)
	locations := memory.NewLocationRepository(store)
	uc := usecase.NewWarehouseUseCase(warehouses)

	require.NoError(t, warehouses.Create(ctx, &entity.Warehouse{ID: "w1", Name: "Principal", ShortCode: "WH"}))
	require.NoError(t, locations.Create(ctx, &entity.Location{ID: "l1", WarehouseID: "w1", Name: "Stock", ShortCode: "STK"}))

	assert.True(t, errors.Is(uc.Delete(ctx, "w1"), domain.ErrConflict))
	require.NoError(t, locations.Delete(ctx, "l1"))
	assert.NoError(t, uc.Delete(ctx, "w1"))
}

func TestUserUseCase_SetActive(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository(memory.NewStore())
	uc := usecase.NewUserUseCase(repo)
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u-admin", Username: "admin", Role: entity.RoleAdmin, Active: true}))
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u-1", Username: "bodega1", Role: entity.RoleUser, Active: true}))

	off, on := false, true
	out, err := uc.SetActive(ctx, "u-admin", "u-1", dto.UpdateUserStatusRequest{Active: &off})
	require.NoError(t, err)
	assert.False(t, out.Active)

	out, err = uc.SetActive(ctx, "u-admin", "u-1", dto.UpdateUserStatusRequest{Active: &on})
	require.NoError(t, err)
	assert.True(t, out.Active)

	_, err = uc.SetActive(ctx, "u-admin", "u-admin", dto.UpdateUserStatusRequest{Active: &off})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "no puede desactivarse a sí mismo")

	_, err = uc.SetActive(ctx, "u-admin", "nope", dto.UpdateUserStatusRequest{Active: &off})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.SetActive(ctx, "u-admin", "u-1", dto.UpdateUserStatusRequest{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "active es obligatorio")
}

func TestUserUseCase_SetRole(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository(memory.NewStore())
	uc := usecase.NewUserUseCase(repo)
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u-admin", Username: "admin", Role: entity.RoleAdmin, Active: true}))
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u-1", Username: "bodega1", Role: entity.RoleUser, Active: true}))

	out, err := uc.SetRole(ctx, "u-admin", "u-1", dto.UpdateUserRoleRequest{Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	_, err = uc.SetRole(ctx, "u-admin", "u-admin", dto.UpdateUserRoleRequest{Role: entity.RoleUser})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "un admin no puede quitarse su propio rol")
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "role", verr.Fields[0].Field)

	_, err = uc.SetRole(ctx, "u-admin", "u-1", dto.UpdateUserRoleRequest{Role: "root"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.SetRole(ctx, "u-admin", "nope", dto.UpdateUserRoleRequest{Role: entity.RoleUser})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProductUseCase_MinimoDeStock(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()))

	p, err := uc.Create(ctx, dto.CreateProductRequest{Code: "DESK-001", Name: "Escritorio", MinStockLevel: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.MinStockLevel)
	assert.True(t, p.LowStock, "stock 0 está bajo el mínimo 5")

	none := int64(0)
	updated, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{MinStockLevel: &none})
	require.NoError(t, err)
	assert.False(t, updated.LowStock, "mínimo 0 desactiva la alerta")

	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "NEG", Name: "Negativo", MinStockLevel: -1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestProductUseCase_DeleteConHistorialEsConflicto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	uc := usecase.NewProductUseCase(products)
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p-libre", Code: "A", Name: "Libre"}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p-ajuste", Code: "B", Name: "Con ajuste"}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p-mov", Code: "C", Name: "Con movimiento"}))
	require.NoError(t, memory.NewAdjustmentRepository(store).Create(ctx, &entity.Adjustment{
		ID: "a1", Reference: "WH/ADJ/0001", ProductID: "p-ajuste", Status: entity.AdjustmentStatusDraft,
	}))
	require.NoError(t, memory.NewStockMoveRepository(store).Create(ctx, &entity.StockMove{
		ID: "m1", ProductID: "p-mov", MoveType: entity.MoveTypeAdjust, QtyChange: 1,
	}))

	require.NoError(t, uc.Delete(ctx, "p-libre"))
	gone, err := uc.GetByID(ctx, "p-libre")
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.True(t, errors.Is(uc.Delete(ctx, "p-ajuste"), domain.ErrConflict))
	assert.True(t, errors.Is(uc.Delete(ctx, "p-mov"), domain.ErrConflict))
	assert.True(t, errors.Is(uc.Delete(ctx, "nope"), domain.ErrNotFound))
}

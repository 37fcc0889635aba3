package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/stockflow-api/internal/interfaces/http"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

const (
	fxWarehouseID = "wh-1"
	fxLocationID  = "loc-1"
	fxProductID   = "prod-1"
)

type apiFixture struct {
	app   *fiber.App
	token string
}

// newAPI arma la API completa sobre el store en memoria con una bodega,
// una ubicación y un producto con stock 45.
func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	warehouseRepo := memory.NewWarehouseRepository(store)
	locationRepo := memory.NewLocationRepository(store)
	productRepo := memory.NewProductRepository(store)
	adjRepo := memory.NewAdjustmentRepository(store)
	moveRepo := memory.NewStockMoveRepository(store)

	now := time.Now()
	require.NoError(t, warehouseRepo.Create(ctx, &entity.Warehouse{ID: fxWarehouseID, Name: "Principal", ShortCode: "WH", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, locationRepo.Create(ctx, &entity.Location{ID: fxLocationID, WarehouseID: fxWarehouseID, Name: "Stock", ShortCode: "STK", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, productRepo.Create(ctx, &entity.Product{ID: fxProductID, Code: "DESK-001", Name: "Escritorio", Cost: decimal.NewFromInt(100), CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, productRepo.UpdateStock(ctx, fxProductID, 45))

	log := logger.Nop()
	adjUC := inventory.NewAdjustmentUseCase(
		memory.NewTxRunner(store), adjRepo, productRepo, warehouseRepo, locationRepo,
		memory.NewSequence(), inventory.Config{}, log,
	)
	authUC := auth.NewAuthUseCase(userRepo, testSigner(t))
	_, err := authUC.EnsureAdmin(ctx, "admin", "admin-password")
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:          authUC,
		UserUC:          usecase.NewUserUseCase(userRepo),
		WarehouseUC:     usecase.NewWarehouseUseCase(warehouseRepo),
		LocationUC:      usecase.NewLocationUseCase(locationRepo, warehouseRepo),
		ProductUC:       usecase.NewProductUseCase(productRepo),
		StockUC:         usecase.NewStockUseCase(productRepo, moveRepo),
		AdjustmentUC:    adjUC,
		VoucherUC:       inventory.NewVoucherUseCase(adjUC, warehouseRepo, locationRepo, productRepo, pdf.NewMarotoVoucherGenerator()),
		ReplenishmentUC: inventory.NewReplenishmentUseCase(productRepo),
		Tokens:          testSigner(t),
	})

	f := &apiFixture{app: app}
	var login dto.LoginResponse
	resp := f.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "admin", Password: "admin-password"}, &login)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	f.token = "Bearer " + login.Token
	return f
}

// do envía body como JSON y decodifica la respuesta en out (si no es nil).
func (f *apiFixture) do(t *testing.T, method, path string, body, out interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", f.token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func createAdjustment(t *testing.T, f *apiFixture, typ string, qty int64) dto.AdjustmentResponse {
	t.Helper()
	var out dto.AdjustmentResponse
	resp := f.do(t, http.MethodPost, "/api/adjustments", dto.CreateAdjustmentRequest{
		WarehouseID: fxWarehouseID,
		LocationID:  fxLocationID,
		ProductID:   fxProductID,
		Type:        typ,
		Quantity:    qty,
		Reason:      entity.ReasonCountCorrection,
	}, &out)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return out
}

func TestAdjustmentAPI_CrearAplicarYRevertir(t *testing.T) {
	f := newAPI(t)

	created := createAdjustment(t, f, "ADD", 5)
	assert.Equal(t, "WH/ADJ/0001", created.Reference)
	assert.Equal(t, "Draft", created.Status)
	assert.Equal(t, "admin", created.CreatedBy)
	assert.Equal(t, int64(45), created.CurrentStock)

	var applied dto.AdjustmentResponse
	resp := f.do(t, http.MethodPost, "/api/adjustments/"+created.ID+"/apply", nil, &applied)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Applied", applied.Status)
	require.NotNil(t, applied.StockAfter)
	assert.Equal(t, int64(50), *applied.StockAfter)
	assert.Equal(t, "admin", applied.AppliedBy)

	var reverted dto.AdjustmentResponse
	resp = f.do(t, http.MethodPost, "/api/adjustments/"+created.ID+"/revert", nil, &reverted)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "REMOVE", reverted.Type)
	assert.Equal(t, "Revert of WH/ADJ/0001", reverted.Reason)
	assert.Equal(t, created.ID, reverted.RevertOf)
	require.NotNil(t, reverted.StockAfter)
	assert.Equal(t, int64(45), *reverted.StockAfter)

	// segunda reversión rechazada
	var errBody dto.ErrorResponse
	resp = f.do(t, http.MethodPost, "/api/adjustments/"+created.ID+"/revert", nil, &errBody)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_STATE", errBody.Code)

	var moves dto.MoveListResponse
	resp = f.do(t, http.MethodGet, "/api/moves?product_id="+fxProductID+"&move_type=adjust", nil, &moves)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, moves.Items, 2)
}

func TestAdjustmentAPI_AplicarDosVecesRetorna409(t *testing.T) {
	f := newAPI(t)
	created := createAdjustment(t, f, "CORRECTION", 5)

	resp := f.do(t, http.MethodPost, "/api/adjustments/"+created.ID+"/apply", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var errBody dto.ErrorResponse
	resp = f.do(t, http.MethodPost, "/api/adjustments/"+created.ID+"/apply", nil, &errBody)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_STATE", errBody.Code)

	var stock dto.StockListResponse
	f.do(t, http.MethodGet, "/api/stock", nil, &stock)
	require.Len(t, stock.Items, 1)
	assert.Equal(t, int64(5), stock.Items[0].OnHand)
	assert.True(t, decimal.NewFromInt(500).Equal(stock.TotalValue))
}

func TestAdjustmentAPI_ValidacionDevuelveCampos(t *testing.T) {
	f := newAPI(t)
	var errBody dto.ErrorResponse
	resp := f.do(t, http.MethodPost, "/api/adjustments", dto.CreateAdjustmentRequest{
		WarehouseID: fxWarehouseID,
		LocationID:  fxLocationID,
		ProductID:   fxProductID,
		Type:        "MOVE",
		Quantity:    0,
		Reason:      entity.ReasonDamaged,
	}, &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errBody.Code)

	fields := map[string]bool{}
	for _, fe := range errBody.Fields {
		fields[fe.Field] = true
	}
	assert.True(t, fields["type"], "type inválido debe reportarse")
	assert.True(t, fields["quantity"], "quantity cero debe reportarse")
}

func TestAdjustmentAPI_PreviewNoModificaStock(t *testing.T) {
	f := newAPI(t)
	var out dto.PreviewAdjustmentResponse
	resp := f.do(t, http.MethodPost, "/api/adjustments/preview", dto.PreviewAdjustmentRequest{
		ProductID: fxProductID, Type: "REMOVE", Quantity: 50,
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(45), out.CurrentStock)
	assert.Equal(t, int64(-5), out.ProjectedStock)
	assert.True(t, out.IsNegative)

	var product dto.ProductResponse
	f.do(t, http.MethodGet, "/api/products/"+fxProductID, nil, &product)
	assert.Equal(t, int64(45), product.Stock)
}

func TestAdjustmentAPI_AplicacionMasivaYFiltros(t *testing.T) {
	f := newAPI(t)
	a := createAdjustment(t, f, "ADD", 10)
	b := createAdjustment(t, f, "REMOVE", 100) // queda Pending
	c := createAdjustment(t, f, "REMOVE", 5)
	assert.Equal(t, "Pending", b.Status)
	assert.True(t, b.Warning)

	resp := f.do(t, http.MethodPost, "/api/adjustments/"+c.ID+"/cancel", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var bulk dto.BulkApplyResponse
	resp = f.do(t, http.MethodPost, "/api/adjustments/bulk-apply", dto.BulkApplyRequest{
		IDs: []string{a.ID, b.ID, c.ID, "no-existe"},
	}, &bulk)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, bulk.Applied, 1)
	assert.Equal(t, a.ID, bulk.Applied[0].ID)
	assert.Len(t, bulk.Skipped, 2)
	require.Len(t, bulk.Failed, 1)
	assert.Equal(t, "no-existe", bulk.Failed[0].ID)

	var list dto.AdjustmentListResponse
	resp = f.do(t, http.MethodGet, "/api/adjustments?status=Applied&type=ALL", nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list.Items, 1)
	assert.Equal(t, a.Reference, list.Items[0].Reference)

	resp = f.do(t, http.MethodGet, "/api/adjustments?status=Borrador", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdjustmentAPI_PDF(t *testing.T) {
	f := newAPI(t)
	created := createAdjustment(t, f, "ADD", 3)

	resp := f.do(t, http.MethodGet, "/api/adjustments/"+created.ID+"/pdf", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestAdjustmentAPI_NoEncontrado(t *testing.T) {
	f := newAPI(t)
	var errBody dto.ErrorResponse
	resp := f.do(t, http.MethodGet, "/api/adjustments/desconocido", nil, &errBody)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

func TestAdjustmentAPI_SinTokenRetorna401(t *testing.T) {
	f := newAPI(t)
	f.token = ""
	resp := f.do(t, http.MethodGet, "/api/adjustments", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductAPI_MovimientosDelProducto(t *testing.T) {
	f := newAPI(t)
	created := createAdjustment(t, f, "REMOVE", 5)
	resp := f.do(t, http.MethodPost, "/api/adjustments/"+created.ID+"/apply", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var moves dto.MoveListResponse
	resp = f.do(t, http.MethodGet, "/api/products/"+fxProductID+"/moves", nil, &moves)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, moves.Items, 1)
	assert.Equal(t, int64(-5), moves.Items[0].QtyChange)
	assert.Equal(t, created.Reference, moves.Items[0].Reference)

	resp = f.do(t, http.MethodGet, "/api/products/nope/moves", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminAPI_DesactivarUsuarioImpideLogin(t *testing.T) {
	f := newAPI(t)

	var user dto.UserResponse
	resp := f.do(t, http.MethodPost, "/api/admin/users", dto.CreateUserRequest{Username: "bodega1", Password: "password-1"}, &user)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	off := false
	var updated dto.UserResponse
	resp = f.do(t, http.MethodPatch, "/api/admin/users/"+user.ID+"/status", dto.UpdateUserStatusRequest{Active: &off}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, updated.Active)

	anon := &apiFixture{app: f.app}
	resp = anon.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "bodega1", Password: "password-1"}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminAPI_CambiarRol(t *testing.T) {
	f := newAPI(t)

	var user dto.UserResponse
	resp := f.do(t, http.MethodPost, "/api/admin/users", dto.CreateUserRequest{Username: "bodega1", Password: "password-1"}, &user)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, entity.RoleUser, user.Role)

	var updated dto.UserResponse
	resp = f.do(t, http.MethodPatch, "/api/admin/users/"+user.ID+"/role", dto.UpdateUserRoleRequest{Role: entity.RoleAdmin}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.RoleAdmin, updated.Role)

	resp = f.do(t, http.MethodPatch, "/api/admin/users/"+user.ID+"/role", dto.UpdateUserRoleRequest{Role: "root"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = f.do(t, http.MethodPatch, "/api/admin/users/nope/role", dto.UpdateUserRoleRequest{Role: entity.RoleUser}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var login dto.LoginResponse
	anon := &apiFixture{app: f.app}
	resp = anon.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "bodega1", Password: "password-1"}, &login)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.RoleAdmin, login.User.Role, "el nuevo token lleva el rol actualizado")
}

func TestProductAPI_Eliminar(t *testing.T) {
	f := newAPI(t)
	createAdjustment(t, f, "ADD", 1)

	var e dto.ErrorResponse
	resp := f.do(t, http.MethodDelete, "/api/products/"+fxProductID, nil, &e)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "el producto tiene ajustes")
	assert.Equal(t, "CONFLICT", e.Code)

	var p dto.ProductResponse
	resp = f.do(t, http.MethodPost, "/api/products", dto.CreateProductRequest{Code: "CHAIR-01", Name: "Silla"}, &p)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.do(t, http.MethodDelete, "/api/products/"+p.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = f.do(t, http.MethodGet, "/api/products/"+p.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = f.do(t, http.MethodDelete, "/api/products/"+p.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboardAPI_TotalesYFaltantes(t *testing.T) {
	f := newAPI(t)

	var p dto.ProductResponse
	resp := f.do(t, http.MethodPost, "/api/products", dto.CreateProductRequest{
		Code: "CHAIR-01", Name: "Silla", Cost: decimal.NewFromInt(20), MinStockLevel: 4,
	}, &p)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, p.LowStock)

	var dash dto.DashboardResponse
	resp = f.do(t, http.MethodGet, "/api/dashboard", nil, &dash)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), dash.TotalProducts)
	assert.Equal(t, int64(1), dash.LowStockItems)
	assert.Equal(t, int64(45), dash.TotalStock)
	assert.True(t, decimal.NewFromInt(4500).Equal(dash.TotalValue))

	var low dto.LowStockListResponse
	resp = f.do(t, http.MethodGet, "/api/stock/low", nil, &low)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, low.Items, 1)
	assert.Equal(t, "CHAIR-01", low.Items[0].Code)
	assert.Equal(t, int64(6), low.Items[0].SuggestedQty)
	assert.Equal(t, 1, low.Items[0].Priority)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	LocationUC   *usecase.LocationUseCase
	ProductUC    *usecase.ProductUseCase
	StockUC      *usecase.StockUseCase
	AdjustmentUC *inventory.AdjustmentUseCase
	VoucherUC    *inventory.VoucherUseCase
	// ReplenishmentUC tablero y faltantes.
	ReplenishmentUC *inventory.ReplenishmentUseCase
	Tokens          *jwt.Signer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Tokens))
	protected.Get("/auth/me", authHandler.Me)

	adminOnly := RequireRole(entity.RoleAdmin)

	users := protected.Group("/admin/users", adminOnly)
	users.Post("/", authHandler.CreateUser)
	users.Get("/", authHandler.ListUsers)
	users.Patch("/:id/status", authHandler.SetUserStatus)
	users.Patch("/:id/role", authHandler.SetUserRole)

	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)
	warehouses.Put("/:id", adminOnly, warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Delete)

	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Post("/", adminOnly, locationHandler.Create)
	locations.Put("/:id", adminOnly, locationHandler.Update)
	locations.Delete("/:id", adminOnly, locationHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Get("/:id/moves", productHandler.Moves)

	stockHandler := NewStockHandler(deps.StockUC)
	protected.Get("/stock", stockHandler.ListStock)
	protected.Get("/moves", stockHandler.ListMoves)

	dashboardHandler := NewDashboardHandler(deps.ReplenishmentUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
	protected.Get("/stock/low", dashboardHandler.LowStock)

	// Ajustes: rutas estáticas antes de /:id
	adjustments := protected.Group("/adjustments")
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC, deps.VoucherUC)
	adjustments.Get("/", adjustmentHandler.List)
	adjustments.Post("/", adjustmentHandler.Create)
	adjustments.Post("/preview", adjustmentHandler.Preview)
	adjustments.Post("/bulk-apply", adjustmentHandler.BulkApply)
	adjustments.Get("/:id", adjustmentHandler.GetByID)
	adjustments.Get("/:id/pdf", adjustmentHandler.PDF)
	adjustments.Post("/:id/apply", adjustmentHandler.Apply)
	adjustments.Post("/:id/cancel", adjustmentHandler.Cancel)
	adjustments.Post("/:id/revert", adjustmentHandler.Revert)
}

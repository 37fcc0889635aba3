package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/stockflow-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/stockflow-api/internal/interfaces/http"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/jhoicas/stockflow-api/pkg/jwt"
	"github.com/jhoicas/stockflow-api/pkg/logger"

	_ "github.com/jhoicas/stockflow-api/docs"
)

// @title        StockFlow API
// @version      1.0
// @description  Ajustes de inventario: creación, aplicación, aplicación masiva y reversión.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("sequence", cfg.Store.SequenceDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.Close()

	adjustmentUC := inventory.NewAdjustmentUseCase(
		st.txRunner, st.adjustments, st.products, st.warehouses, st.locations, st.sequence,
		inventory.Config{
			ReferencePrefix:         cfg.Adjustments.ReferencePrefix,
			RevertCorrectionMode:    inventory.RevertMode(cfg.Adjustments.RevertCorrectionMode),
			PendingRequiresOverride: cfg.Adjustments.PendingRequiresOverride,
		},
		log.Component("adjustments"),
	)
	voucherUC := inventory.NewVoucherUseCase(
		adjustmentUC, st.warehouses, st.locations, st.products, infrapdf.NewMarotoVoucherGenerator(),
	)
	tokens, err := jwt.NewSigner(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar JWT (JWT_SECRET)")
	}
	authUC := auth.NewAuthUseCase(st.users, tokens)

	created, err := authUC.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("crear usuario administrador")
	}
	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("usuario administrador creado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := st.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		UserUC:          usecase.NewUserUseCase(st.users),
		WarehouseUC:     usecase.NewWarehouseUseCase(st.warehouses),
		LocationUC:      usecase.NewLocationUseCase(st.locations, st.warehouses),
		ProductUC:       usecase.NewProductUseCase(st.products),
		StockUC:         usecase.NewStockUseCase(st.products, st.moves),
		AdjustmentUC:    adjustmentUC,
		VoucherUC:       voucherUC,
		ReplenishmentUC: inventory.NewReplenishmentUseCase(st.products),
		Tokens:          tokens,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

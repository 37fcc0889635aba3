package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

// Voucher datos necesarios para imprimir el comprobante de un ajuste.
type Voucher struct {
	Adjustment *entity.Adjustment
	Warehouse  *entity.Warehouse
	Location   *entity.Location
	Product    *entity.Product
}

// VoucherGenerator genera el PDF del comprobante.
type VoucherGenerator interface {
	GenerateAdjustmentPDF(ctx context.Context, v Voucher) ([]byte, error)
}

// VoucherUseCase arma y genera el comprobante PDF de un ajuste.
type VoucherUseCase struct {
	adjustments   *AdjustmentUseCase
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
	productRepo   repository.ProductRepository
	generator     VoucherGenerator
}

// NewVoucherUseCase construye el caso de uso.
func NewVoucherUseCase(
	adjustments *AdjustmentUseCase,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	generator VoucherGenerator,
) *VoucherUseCase {
	return &VoucherUseCase{
		adjustments:   adjustments,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
		productRepo:   productRepo,
		generator:     generator,
	}
}

// Generate devuelve los bytes del PDF del ajuste id.
func (uc *VoucherUseCase) Generate(ctx context.Context, id string) ([]byte, error) {
	adj, err := uc.adjustments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := Voucher{Adjustment: adj}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		v.Warehouse, err = uc.warehouseRepo.GetByID(gctx, adj.WarehouseID)
		return err
	})
	g.Go(func() (err error) {
		v.Location, err = uc.locationRepo.GetByID(gctx, adj.LocationID)
		return err
	})
	g.Go(func() (err error) {
		v.Product, err = uc.productRepo.GetByID(gctx, adj.ProductID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cargando datos del comprobante: %w", err)
	}
	return uc.generator.GenerateAdjustmentPDF(ctx, v)
}

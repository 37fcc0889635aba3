package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/validation"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// ReferenceSequenceName nombre de la secuencia de referencias de ajustes.
const ReferenceSequenceName = "adjustment"

// RevertMode define cómo se revierte un ajuste CORRECTION.
type RevertMode string

const (
	// RevertModeRestore crea una CORRECTION al stock que había antes de aplicar el original.
	RevertModeRestore RevertMode = "restore"
	// RevertModeLegacy crea una CORRECTION con la misma cantidad del original (no restaura nada).
	RevertModeLegacy RevertMode = "legacy"
)

// Config parámetros del ciclo de vida de ajustes.
type Config struct {
	ReferencePrefix         string // WH/ADJ/
	RevertCorrectionMode    RevertMode
	PendingRequiresOverride bool // Pending necesita ApplyOptions.Override para aplicarse
}

// ApplyOptions opciones de Apply.
type ApplyOptions struct {
	Override bool // confirma aplicar un ajuste Pending (stock negativo)
}

// BulkItem resultado de un ajuste dentro de BulkApply.
type BulkItem struct {
	ID        string
	Reference string
	Reason    string
}

// BulkApplyResult resumen de BulkApply. Los slices nunca son nil.
type BulkApplyResult struct {
	Applied []BulkItem
	Skipped []BulkItem
	Failed  []BulkItem
}

// AdjustmentUseCase gestiona el ciclo de vida de ajustes de inventario:
// Draft/Pending → Applied | Cancelled, aplicación masiva y reversión por ajuste compensatorio.
// Apply y Revert bloquean ajuste y producto (SELECT FOR UPDATE) dentro de una sola transacción.
type AdjustmentUseCase struct {
	txRunner      TxRunner
	adjRepo       repository.AdjustmentRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
	seq           ReferenceSequence
	cfg           Config
	log           *logger.Logger
	now           func() time.Time
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(
	txRunner TxRunner,
	adjRepo repository.AdjustmentRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	seq ReferenceSequence,
	cfg Config,
	log *logger.Logger,
) *AdjustmentUseCase {
	if cfg.ReferencePrefix == "" {
		cfg.ReferencePrefix = "WH/ADJ/"
	}
	if cfg.RevertCorrectionMode != RevertModeLegacy {
		cfg.RevertCorrectionMode = RevertModeRestore
	}
	return &AdjustmentUseCase{
		txRunner:      txRunner,
		adjRepo:       adjRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
		seq:           seq,
		cfg:           cfg,
		log:           log,
		now:           time.Now,
	}
}

// Preview proyecta el ajuste sobre el stock vigente del producto, sin efectos.
func (uc *AdjustmentUseCase) Preview(ctx context.Context, in dto.PreviewAdjustmentRequest) (inventory.Projection, error) {
	if verr := validation.Struct(in); verr != nil {
		return inventory.Projection{}, verr
	}
	t, _ := entity.ParseAdjustmentType(in.Type)
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return inventory.Projection{}, fmt.Errorf("obteniendo producto: %w", err)
	}
	if product == nil {
		return inventory.Projection{}, domain.NewValidationError("product_id", "el producto no existe")
	}
	return inventory.Project(product.Stock, t, in.Quantity), nil
}

// Create valida la entrada y crea el ajuste en Draft, o en Pending (Warning) si la proyección
// sobre el stock vigente es negativa. Con ApplyNow lo aplica inmediatamente.
func (uc *AdjustmentUseCase) Create(ctx context.Context, in dto.CreateAdjustmentRequest) (*entity.Adjustment, error) {
	if verr := validation.Struct(in); verr != nil {
		return nil, verr
	}
	t, _ := entity.ParseAdjustmentType(in.Type)

	var (
		product   *entity.Product
		warehouse *entity.Warehouse
		location  *entity.Location
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := uc.productRepo.GetByID(gctx, in.ProductID)
		product = p
		return err
	})
	g.Go(func() error {
		w, err := uc.warehouseRepo.GetByID(gctx, in.WarehouseID)
		warehouse = w
		return err
	})
	g.Go(func() error {
		l, err := uc.locationRepo.GetByID(gctx, in.LocationID)
		location = l
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolviendo referencias del ajuste: %w", err)
	}

	verr := &domain.ValidationError{}
	if product == nil {
		verr.Add("product_id", "el producto no existe")
	}
	if warehouse == nil {
		verr.Add("warehouse_id", "la bodega no existe")
	}
	if location == nil {
		verr.Add("location_id", "la ubicación no existe")
	} else if warehouse != nil && location.WarehouseID != warehouse.ID {
		verr.Add("location_id", "la ubicación no pertenece a la bodega")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	ref, err := uc.nextReference(ctx)
	if err != nil {
		return nil, err
	}
	proj := inventory.Project(product.Stock, t, in.Quantity)
	status := entity.AdjustmentStatusDraft
	if proj.IsNegative {
		status = entity.AdjustmentStatusPending
	}
	adj := &entity.Adjustment{
		ID:           uuid.New().String(),
		Reference:    ref,
		WarehouseID:  warehouse.ID,
		LocationID:   location.ID,
		ProductID:    product.ID,
		ProductCode:  product.Code,
		ProductName:  product.Name,
		CurrentStock: product.Stock,
		Type:         t,
		Quantity:     in.Quantity,
		Reason:       in.Reason,
		Note:         in.Note,
		Status:       status,
		Warning:      proj.IsNegative,
		CreatedBy:    ActorFromContext(ctx),
		CreatedAt:    uc.now(),
	}
	if err := uc.adjRepo.Create(ctx, adj); err != nil {
		return nil, fmt.Errorf("creando ajuste: %w", err)
	}
	uc.log.Info().
		Str("reference", adj.Reference).
		Str("product", adj.ProductCode).
		Str("type", string(adj.Type)).
		Int64("quantity", adj.Quantity).
		Str("status", string(adj.Status)).
		Msg("ajuste creado")

	if in.ApplyNow {
		// "Aplicar ahora" en el formulario equivale a confirmar la advertencia de stock negativo.
		return uc.Apply(ctx, adj.ID, ApplyOptions{Override: true})
	}
	return adj, nil
}

// GetByID obtiene un ajuste por ID (ErrNotFound si no existe).
func (uc *AdjustmentUseCase) GetByID(ctx context.Context, id string) (*entity.Adjustment, error) {
	adj, err := uc.adjRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obteniendo ajuste: %w", err)
	}
	if adj == nil {
		return nil, fmt.Errorf("ajuste %s: %w", id, domain.ErrNotFound)
	}
	return adj, nil
}

// List lista ajustes según el filtro, del más reciente al más antiguo.
func (uc *AdjustmentUseCase) List(ctx context.Context, filter entity.AdjustmentFilter) ([]*entity.Adjustment, error) {
	list, err := uc.adjRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listando ajustes: %w", err)
	}
	return list, nil
}

// Apply aplica un ajuste Draft o Pending: proyecta sobre el stock vigente (no el de creación),
// escribe el nuevo stock y registra el movimiento. Todo en una transacción.
func (uc *AdjustmentUseCase) Apply(ctx context.Context, id string, opts ApplyOptions) (*entity.Adjustment, error) {
	actor := ActorFromContext(ctx)
	var out *entity.Adjustment
	err := uc.txRunner.Run(ctx, func(
		adjRepo repository.AdjustmentRepository,
		productRepo repository.ProductRepository,
		moveRepo repository.StockMoveRepository,
	) error {
		adj, err := adjRepo.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("bloqueando ajuste: %w", err)
		}
		if adj == nil {
			return fmt.Errorf("ajuste %s: %w", id, domain.ErrNotFound)
		}
		if !adj.CanApply() {
			return &domain.StateError{ID: adj.Reference, Status: string(adj.Status), Operation: "aplicar"}
		}
		if adj.Status == entity.AdjustmentStatusPending && uc.cfg.PendingRequiresOverride && !opts.Override {
			return &domain.StateError{
				ID: adj.Reference, Status: string(adj.Status), Operation: "aplicar",
				Reason: "requiere confirmación (override) por stock negativo",
			}
		}
		product, err := lockProduct(ctx, productRepo, adj.ProductID)
		if err != nil {
			return err
		}
		if err := uc.applyLocked(ctx, adj, product, actor, adjRepo, productRepo, moveRepo); err != nil {
			return err
		}
		out = adj
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logApplied(out, "ajuste aplicado")
	return out, nil
}

// Cancel pasa un ajuste Draft o Pending a Cancelled sin efecto sobre el stock.
func (uc *AdjustmentUseCase) Cancel(ctx context.Context, id string) (*entity.Adjustment, error) {
	var out *entity.Adjustment
	err := uc.txRunner.Run(ctx, func(
		adjRepo repository.AdjustmentRepository,
		_ repository.ProductRepository,
		_ repository.StockMoveRepository,
	) error {
		adj, err := adjRepo.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("bloqueando ajuste: %w", err)
		}
		if adj == nil {
			return fmt.Errorf("ajuste %s: %w", id, domain.ErrNotFound)
		}
		if !adj.CanCancel() {
			return &domain.StateError{ID: adj.Reference, Status: string(adj.Status), Operation: "cancelar"}
		}
		adj.Status = entity.AdjustmentStatusCancelled
		if err := adjRepo.Update(ctx, adj); err != nil {
			return fmt.Errorf("actualizando ajuste: %w", err)
		}
		out = adj
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("reference", out.Reference).Str("actor", ActorFromContext(ctx)).Msg("ajuste cancelado")
	return out, nil
}

// BulkApply aplica, en el orden recibido y cada uno en su propia transacción, los ajustes Draft.
// Applied/Cancelled se omiten; Pending se omite por requerir revisión. Un fallo no revierte los anteriores.
func (uc *AdjustmentUseCase) BulkApply(ctx context.Context, ids []string) BulkApplyResult {
	res := BulkApplyResult{Applied: []BulkItem{}, Skipped: []BulkItem{}, Failed: []BulkItem{}}
	actor := ActorFromContext(ctx)
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		var (
			item    = BulkItem{ID: id}
			skipped bool
			applied *entity.Adjustment
		)
		err := uc.txRunner.Run(ctx, func(
			adjRepo repository.AdjustmentRepository,
			productRepo repository.ProductRepository,
			moveRepo repository.StockMoveRepository,
		) error {
			adj, err := adjRepo.GetForUpdate(ctx, id)
			if err != nil {
				return fmt.Errorf("bloqueando ajuste: %w", err)
			}
			if adj == nil {
				return domain.ErrNotFound
			}
			item.Reference = adj.Reference
			switch adj.Status {
			case entity.AdjustmentStatusApplied, entity.AdjustmentStatusCancelled:
				skipped, item.Reason = true, "ya está "+string(adj.Status)
				return nil
			case entity.AdjustmentStatusPending:
				skipped, item.Reason = true, "requiere revisión (stock negativo)"
				return nil
			}
			product, err := lockProduct(ctx, productRepo, adj.ProductID)
			if err != nil {
				return err
			}
			if err := uc.applyLocked(ctx, adj, product, actor, adjRepo, productRepo, moveRepo); err != nil {
				return err
			}
			applied = adj
			return nil
		})
		switch {
		case err != nil:
			item.Reason = err.Error()
			res.Failed = append(res.Failed, item)
			uc.log.Warn().Err(err).Str("id", id).Msg("aplicación masiva: ajuste fallido")
		case skipped:
			res.Skipped = append(res.Skipped, item)
		default:
			res.Applied = append(res.Applied, item)
			uc.logApplied(applied, "ajuste aplicado (masivo)")
		}
	}
	uc.log.Info().
		Int("applied", len(res.Applied)).
		Int("skipped", len(res.Skipped)).
		Int("failed", len(res.Failed)).
		Msg("aplicación masiva terminada")
	return res
}

// Revert crea y aplica, en una transacción, el ajuste compensatorio de un ajuste Applied.
// El original no se modifica. Un ajuste solo puede revertirse una vez.
func (uc *AdjustmentUseCase) Revert(ctx context.Context, id string) (*entity.Adjustment, error) {
	actor := ActorFromContext(ctx)
	var out *entity.Adjustment
	err := uc.txRunner.Run(ctx, func(
		adjRepo repository.AdjustmentRepository,
		productRepo repository.ProductRepository,
		moveRepo repository.StockMoveRepository,
	) error {
		orig, err := adjRepo.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("bloqueando ajuste: %w", err)
		}
		if orig == nil {
			return fmt.Errorf("ajuste %s: %w", id, domain.ErrNotFound)
		}
		if !orig.CanRevert() {
			return &domain.StateError{ID: orig.Reference, Status: string(orig.Status), Operation: "revertir"}
		}
		prev, err := adjRepo.GetRevertOf(ctx, orig.ID)
		if err != nil {
			return fmt.Errorf("buscando reversión previa: %w", err)
		}
		if prev != nil {
			return &domain.StateError{
				ID: orig.Reference, Status: string(orig.Status), Operation: "revertir",
				Reason: "ya fue revertido por " + prev.Reference,
			}
		}
		revType, revQty, err := uc.compensation(orig)
		if err != nil {
			return err
		}
		product, err := lockProduct(ctx, productRepo, orig.ProductID)
		if err != nil {
			return err
		}
		ref, err := uc.nextReference(ctx)
		if err != nil {
			return err
		}
		rev := &entity.Adjustment{
			ID:           uuid.New().String(),
			Reference:    ref,
			WarehouseID:  orig.WarehouseID,
			LocationID:   orig.LocationID,
			ProductID:    orig.ProductID,
			ProductCode:  orig.ProductCode,
			ProductName:  orig.ProductName,
			CurrentStock: product.Stock,
			Type:         revType,
			Quantity:     revQty,
			Reason:       "Revert of " + orig.Reference,
			Status:       entity.AdjustmentStatusDraft,
			CreatedBy:    actor,
			CreatedAt:    uc.now(),
			RevertOf:     orig.ID,
		}
		if err := adjRepo.Create(ctx, rev); err != nil {
			return fmt.Errorf("creando reversión: %w", err)
		}
		if err := uc.applyLocked(ctx, rev, product, actor, adjRepo, productRepo, moveRepo); err != nil {
			return err
		}
		out = rev
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logApplied(out, "ajuste revertido")
	return out, nil
}

// compensation calcula tipo y cantidad del ajuste que deshace orig.
func (uc *AdjustmentUseCase) compensation(orig *entity.Adjustment) (entity.AdjustmentType, int64, error) {
	if orig.Type != entity.AdjustmentTypeCorrection {
		return orig.Type.InverseType(), orig.Quantity, nil
	}
	if uc.cfg.RevertCorrectionMode == RevertModeLegacy {
		return entity.AdjustmentTypeCorrection, orig.Quantity, nil
	}
	if orig.StockBefore == nil {
		return "", 0, &domain.StateError{
			ID: orig.Reference, Status: string(orig.Status), Operation: "revertir",
			Reason: "no se registró el stock previo a la aplicación",
		}
	}
	if *orig.StockBefore < 0 {
		return "", 0, &domain.StateError{
			ID: orig.Reference, Status: string(orig.Status), Operation: "revertir",
			Reason: fmt.Sprintf("el stock previo (%d) es negativo", *orig.StockBefore),
		}
	}
	return entity.AdjustmentTypeCorrection, *orig.StockBefore, nil
}

// applyLocked aplica adj sobre product (ambos ya bloqueados en la tx actual).
func (uc *AdjustmentUseCase) applyLocked(
	ctx context.Context,
	adj *entity.Adjustment,
	product *entity.Product,
	actor string,
	adjRepo repository.AdjustmentRepository,
	productRepo repository.ProductRepository,
	moveRepo repository.StockMoveRepository,
) error {
	proj := inventory.Project(product.Stock, adj.Type, adj.Quantity)
	if err := productRepo.UpdateStock(ctx, product.ID, proj.Projected); err != nil {
		return fmt.Errorf("actualizando stock: %w", err)
	}
	now := uc.now()
	adj.MarkApplied(actor, proj.Current, proj.Projected, now)
	if err := adjRepo.Update(ctx, adj); err != nil {
		return fmt.Errorf("actualizando ajuste: %w", err)
	}
	move := &entity.StockMove{
		ID:          uuid.New().String(),
		Reference:   adj.Reference,
		ProductID:   adj.ProductID,
		WarehouseID: adj.WarehouseID,
		LocationID:  adj.LocationID,
		MoveType:    entity.MoveTypeAdjust,
		QtyChange:   proj.Delta(),
		StockBefore: proj.Current,
		StockAfter:  proj.Projected,
		CreatedBy:   actor,
		CreatedAt:   now,
	}
	if err := moveRepo.Create(ctx, move); err != nil {
		return fmt.Errorf("registrando movimiento: %w", err)
	}
	product.Stock = proj.Projected
	return nil
}

func (uc *AdjustmentUseCase) nextReference(ctx context.Context) (string, error) {
	n, err := uc.seq.Next(ctx, ReferenceSequenceName)
	if err != nil {
		return "", fmt.Errorf("generando referencia: %w", err)
	}
	return fmt.Sprintf("%s%04d", uc.cfg.ReferencePrefix, n), nil
}

func (uc *AdjustmentUseCase) logApplied(adj *entity.Adjustment, msg string) {
	ev := uc.log.Info().
		Str("reference", adj.Reference).
		Str("product", adj.ProductCode).
		Str("type", string(adj.Type)).
		Int64("quantity", adj.Quantity).
		Str("actor", adj.AppliedBy)
	if adj.StockBefore != nil && adj.StockAfter != nil {
		ev = ev.Int64("stock_before", *adj.StockBefore).Int64("stock_after", *adj.StockAfter)
	}
	if adj.Warning {
		ev = ev.Bool("negative_stock", true)
	}
	ev.Msg(msg)
}

func lockProduct(ctx context.Context, productRepo repository.ProductRepository, id string) (*entity.Product, error) {
	product, err := productRepo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("bloqueando producto: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return product, nil
}

package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// AdjustmentHandler maneja el ciclo de vida de ajustes de inventario.
type AdjustmentHandler struct {
	uc      *inventory.AdjustmentUseCase
	voucher *inventory.VoucherUseCase
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(uc *inventory.AdjustmentUseCase, voucher *inventory.VoucherUseCase) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc, voucher: voucher}
}

// List godoc
// @Summary      Listar ajustes
// @Tags         adjustments
// @Produce      json
// @Security     Bearer
// @Param        type          query  string  false  "ADD | REMOVE | CORRECTION | ALL"
// @Param        status        query  string  false  "Draft | Pending | Applied | Cancelled | ALL"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Param        location_id   query  string  false  "Ubicación"
// @Param        product_id    query  string  false  "Producto"
// @Param        from          query  string  false  "Desde (YYYY-MM-DD o RFC3339)"
// @Param        to            query  string  false  "Hasta (YYYY-MM-DD o RFC3339)"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AdjustmentListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/adjustments [get]
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	var q dto.AdjustmentFilterRequest
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	filter, err := adjustmentFilter(q)
	if err != nil {
		return handleError(c, err)
	}
	list, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return handleError(c, err)
	}
	items := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, toAdjustmentResponse(a))
	}
	return c.JSON(dto.AdjustmentListResponse{
		Items: items,
		Page:  dto.NewPage(filter.Limit, filter.Offset, len(items)),
	})
}

// adjustmentFilter convierte la query en filtro de dominio. "ALL" o vacío no filtra.
func adjustmentFilter(q dto.AdjustmentFilterRequest) (entity.AdjustmentFilter, error) {
	q.DefaultPage()
	f := entity.AdjustmentFilter{
		WarehouseID: q.WarehouseID,
		LocationID:  q.LocationID,
		ProductID:   q.ProductID,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
	verr := &domain.ValidationError{}
	if t := strings.TrimSpace(q.Type); t != "" && !strings.EqualFold(t, "ALL") {
		parsed, ok := entity.ParseAdjustmentType(t)
		if !ok {
			verr.Add("type", "debe ser ADD, REMOVE, CORRECTION o ALL")
		}
		f.Type = parsed
	}
	if s := strings.TrimSpace(q.Status); s != "" && !strings.EqualFold(s, "ALL") {
		parsed, ok := entity.ParseAdjustmentStatus(s)
		if !ok {
			verr.Add("status", "debe ser Draft, Pending, Applied, Cancelled o ALL")
		}
		f.Status = parsed
	}
	var err error
	if f.From, err = usecase.ParseDateParam(q.From, false); err != nil {
		verr.Add("from", err.Error())
	}
	if f.To, err = usecase.ParseDateParam(q.To, true); err != nil {
		verr.Add("to", err.Error())
	}
	if verr.HasErrors() {
		return f, verr
	}
	return f, nil
}

// Create godoc
// @Summary      Crear ajuste
// @Description  Crea un ajuste en Draft, o Pending si la proyección es negativa. Con apply_now lo aplica de inmediato.
// @Tags         adjustments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.CreateAdjustmentRequest  true  "Ajuste"
// @Success      201   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	adj, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAdjustmentResponse(adj))
}

// Preview godoc
// @Summary      Proyectar ajuste
// @Description  Calcula el stock resultante sin modificar nada.
// @Tags         adjustments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.PreviewAdjustmentRequest  true  "Producto, tipo y cantidad"
// @Success      200   {object}  dto.PreviewAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/adjustments/preview [post]
func (h *AdjustmentHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	p, err := h.uc.Preview(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.PreviewAdjustmentResponse{
		ProductID:      in.ProductID,
		CurrentStock:   p.Current,
		ProjectedStock: p.Projected,
		IsNegative:     p.IsNegative,
	})
}

// GetByID godoc
// @Summary      Obtener ajuste
// @Tags         adjustments
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id} [get]
func (h *AdjustmentHandler) GetByID(c *fiber.Ctx) error {
	adj, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(toAdjustmentResponse(adj))
}

// Apply godoc
// @Summary      Aplicar ajuste
// @Tags         adjustments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                       true   "ID"
// @Param        body  body  dto.ApplyAdjustmentRequest   false  "override para ajustes Pending"
// @Success      200   {object}  dto.AdjustmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id}/apply [post]
func (h *AdjustmentHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyAdjustmentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	adj, err := h.uc.Apply(c.UserContext(), c.Params("id"), inventory.ApplyOptions{Override: in.Override})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(toAdjustmentResponse(adj))
}

// Cancel godoc
// @Summary      Cancelar ajuste
// @Tags         adjustments
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id}/cancel [post]
func (h *AdjustmentHandler) Cancel(c *fiber.Ctx) error {
	adj, err := h.uc.Cancel(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(toAdjustmentResponse(adj))
}

// Revert godoc
// @Summary      Revertir ajuste
// @Description  Crea y aplica el ajuste compensatorio de un ajuste Applied. Solo una vez por ajuste.
// @Tags         adjustments
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      201  {object}  dto.AdjustmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id}/revert [post]
func (h *AdjustmentHandler) Revert(c *fiber.Ctx) error {
	adj, err := h.uc.Revert(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAdjustmentResponse(adj))
}

// BulkApply godoc
// @Summary      Aplicación masiva
// @Tags         adjustments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.BulkApplyRequest  true  "IDs a aplicar"
// @Success      200   {object}  dto.BulkApplyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/adjustments/bulk-apply [post]
func (h *AdjustmentHandler) BulkApply(c *fiber.Ctx) error {
	var in dto.BulkApplyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if len(in.IDs) == 0 {
		return handleError(c, domain.NewValidationError("ids", "debe incluir al menos un ajuste"))
	}
	if len(in.IDs) > 500 {
		return handleError(c, domain.NewValidationError("ids", "máximo 500 ajustes por petición"))
	}
	res := h.uc.BulkApply(c.UserContext(), in.IDs)
	return c.JSON(dto.BulkApplyResponse{
		Applied: toBulkItems(res.Applied),
		Skipped: toBulkItems(res.Skipped),
		Failed:  toBulkItems(res.Failed),
	})
}

// PDF godoc
// @Summary      Comprobante PDF del ajuste
// @Tags         adjustments
// @Produce      application/pdf
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id}/pdf [get]
func (h *AdjustmentHandler) PDF(c *fiber.Ctx) error {
	b, err := h.voucher.Generate(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ajuste-`+c.Params("id")+`.pdf"`)
	return c.Send(b)
}

func toBulkItems(in []inventory.BulkItem) []dto.BulkApplyItem {
	out := make([]dto.BulkApplyItem, 0, len(in))
	for _, it := range in {
		out = append(out, dto.BulkApplyItem{ID: it.ID, Reference: it.Reference, Reason: it.Reason})
	}
	return out
}

func toAdjustmentResponse(a *entity.Adjustment) dto.AdjustmentResponse {
	return dto.AdjustmentResponse{
		ID:           a.ID,
		Reference:    a.Reference,
		WarehouseID:  a.WarehouseID,
		LocationID:   a.LocationID,
		ProductID:    a.ProductID,
		ProductCode:  a.ProductCode,
		ProductName:  a.ProductName,
		CurrentStock: a.CurrentStock,
		Type:         string(a.Type),
		Quantity:     a.Quantity,
		Reason:       a.Reason,
		Note:         a.Note,
		Status:       string(a.Status),
		Warning:      a.Warning,
		CreatedBy:    a.CreatedBy,
		CreatedAt:    a.CreatedAt,
		AppliedBy:    a.AppliedBy,
		AppliedAt:    a.AppliedAt,
		StockBefore:  a.StockBefore,
		StockAfter:   a.StockAfter,
		RevertOf:     a.RevertOf,
	}
}

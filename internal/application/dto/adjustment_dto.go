package dto

import "time"

// CreateAdjustmentRequest body para POST /api/adjustments.
type CreateAdjustmentRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required"`
	LocationID  string `json:"location_id" validate:"required"`
	ProductID   string `json:"product_id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=ADD REMOVE CORRECTION"`
	Quantity    int64  `json:"quantity" validate:"gt=0"`
	Reason      string `json:"reason" validate:"required,max=200"`
	Note        string `json:"note" validate:"max=1000"`
	// ApplyNow aplica el ajuste inmediatamente después de crearlo ("Apply Now" del formulario).
	ApplyNow bool `json:"apply_now"`
}

// PreviewAdjustmentRequest body para POST /api/adjustments/preview.
type PreviewAdjustmentRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=ADD REMOVE CORRECTION"`
	Quantity  int64  `json:"quantity"`
}

// PreviewAdjustmentResponse stock actual y proyectado.
type PreviewAdjustmentResponse struct {
	ProductID      string `json:"product_id"`
	CurrentStock   int64  `json:"current_stock"`
	ProjectedStock int64  `json:"projected_stock"`
	IsNegative     bool   `json:"is_negative"`
}

// ApplyAdjustmentRequest body opcional para POST /api/adjustments/:id/apply.
type ApplyAdjustmentRequest struct {
	Override bool `json:"override"`
}

// BulkApplyRequest body para POST /api/adjustments/bulk-apply.
type BulkApplyRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=500"`
}

// BulkApplyItem resultado por ajuste dentro de una aplicación masiva.
type BulkApplyItem struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// BulkApplyResponse resumen de la aplicación masiva.
type BulkApplyResponse struct {
	Applied []BulkApplyItem `json:"applied"`
	Skipped []BulkApplyItem `json:"skipped"`
	Failed  []BulkApplyItem `json:"failed"`
}

// AdjustmentFilterRequest query params de GET /api/adjustments.
type AdjustmentFilterRequest struct {
	Type        string `query:"type"`
	Status      string `query:"status"`
	WarehouseID string `query:"warehouse_id"`
	LocationID  string `query:"location_id"`
	ProductID   string `query:"product_id"`
	From        string `query:"from"`
	To          string `query:"to"`
	PageRequest
}

// AdjustmentResponse salida de un ajuste.
type AdjustmentResponse struct {
	ID           string     `json:"id"`
	Reference    string     `json:"reference"`
	WarehouseID  string     `json:"warehouse_id"`
	LocationID   string     `json:"location_id"`
	ProductID    string     `json:"product_id"`
	ProductCode  string     `json:"product_code"`
	ProductName  string     `json:"product_name"`
	CurrentStock int64      `json:"current_stock"`
	Type         string     `json:"type"`
	Quantity     int64      `json:"quantity"`
	Reason       string     `json:"reason"`
	Note         string     `json:"note,omitempty"`
	Status       string     `json:"status"`
	Warning      bool       `json:"warning"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	AppliedBy    string     `json:"applied_by,omitempty"`
	AppliedAt    *time.Time `json:"applied_at,omitempty"`
	StockBefore  *int64     `json:"stock_before,omitempty"`
	StockAfter   *int64     `json:"stock_after,omitempty"`
	RevertOf     string     `json:"revert_of,omitempty"`
}

// AdjustmentListResponse lista paginada de ajustes.
type AdjustmentListResponse struct {
	Items []AdjustmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

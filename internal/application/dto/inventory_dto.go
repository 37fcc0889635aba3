package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItemResponse fila de la vista de stock.
type StockItemResponse struct {
	ProductID     string          `json:"product_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Cost          decimal.Decimal `json:"cost"`
	OnHand        int64           `json:"on_hand"`
	FreeToUse     int64           `json:"free_to_use"`
	Value         decimal.Decimal `json:"value"` // cost * on_hand
	MinStockLevel int64           `json:"min_stock_level"`
	LowStock      bool            `json:"low_stock"`
}

// StockListResponse vista de stock paginada con valor total de la página.
type StockListResponse struct {
	Items      []StockItemResponse `json:"items"`
	TotalValue decimal.Decimal     `json:"total_value"`
	Page       PageResponse        `json:"page"`
}

// MoveFilterRequest query params de GET /api/moves.
type MoveFilterRequest struct {
	ProductID string `query:"product_id"`
	MoveType  string `query:"move_type"`
	From      string `query:"from"`
	To        string `query:"to"`
	PageRequest
}

// MoveResponse entrada del historial de movimientos.
type MoveResponse struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	LocationID  string    `json:"location_id"`
	MoveType    string    `json:"move_type"`
	QtyChange   int64     `json:"qty_change"`
	StockBefore int64     `json:"stock_before"`
	StockAfter  int64     `json:"stock_after"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// MoveListResponse lista paginada del historial.
type MoveListResponse struct {
	Items []MoveResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

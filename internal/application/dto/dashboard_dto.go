package dto

import "github.com/shopspring/decimal"

// DashboardResponse indicadores del tablero de inventario.
type DashboardResponse struct {
	TotalProducts int64           `json:"total_products"`
	LowStockItems int64           `json:"low_stock_items"`
	TotalStock    int64           `json:"total_stock"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// LowStockItemResponse producto en o bajo su mínimo con la reposición sugerida.
type LowStockItemResponse struct {
	ProductID     string          `json:"product_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Stock         int64           `json:"stock"`
	MinStockLevel int64           `json:"min_stock_level"`
	IdealStock    int64           `json:"ideal_stock"`
	SuggestedQty  int64           `json:"suggested_qty"`
	Cost          decimal.Decimal `json:"cost"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Priority      int             `json:"priority"` // 1 = más urgente
}

// LowStockListResponse lista paginada de faltantes.
type LowStockListResponse struct {
	Items []LowStockItemResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

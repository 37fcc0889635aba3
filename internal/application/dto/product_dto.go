package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El stock inicial es cero; cambia solo por ajustes.
type CreateProductRequest struct {
	Code string          `json:"code" validate:"required,min=1,max=100"`
	Name string          `json:"name" validate:"required,min=1,max=200"`
	Cost decimal.Decimal `json:"cost"`
	// MinStockLevel umbral de faltante (0 = sin alerta).
	MinStockLevel int64 `json:"min_stock_level" validate:"gte=0"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Cost          *decimal.Decimal `json:"cost"`
	MinStockLevel *int64           `json:"min_stock_level" validate:"omitempty,gte=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int64           `json:"stock"`
	MinStockLevel int64           `json:"min_stock_level"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

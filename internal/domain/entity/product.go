package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock solo cambia al aplicar ajustes (u operaciones equivalentes); Cost es el costo unitario.
type Product struct {
	ID       string
	Code     string // código único (SKU)
	Name     string
	Cost     decimal.Decimal
	Stock    int64
	Reserved int64 // comprometido en entregas; FreeToUse = Stock - Reserved
	// MinStockLevel umbral de faltante; 0 desactiva la alerta.
	MinStockLevel int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StockSummary totales del tablero de inventario.
type StockSummary struct {
	TotalProducts int64
	LowStockItems int64
	TotalStock    int64
	TotalValue    decimal.Decimal
}

// FreeToUse stock disponible no comprometido.
func (p *Product) FreeToUse() int64 {
	return p.Stock - p.Reserved
}

// IsLowStock indica si el stock llegó al mínimo configurado.
func (p *Product) IsLowStock() bool {
	return p.MinStockLevel > 0 && p.Stock <= p.MinStockLevel
}

// Value valoriza el stock a costo unitario.
func (p *Product) Value() decimal.Decimal {
	return p.Cost.Mul(decimal.NewFromInt(p.Stock))
}

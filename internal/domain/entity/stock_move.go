package entity

import "time"

// Tipos de movimiento del libro de stock.
const (
	MoveTypeReceipt  = "receipt"
	MoveTypeDelivery = "delivery"
	MoveTypeTransfer = "transfer"
	MoveTypeAdjust   = "adjust"
)

// StockMove entrada del historial de movimientos (libro de stock).
type StockMove struct {
	ID          string
	Reference   string
	ProductID   string
	WarehouseID string
	LocationID  string
	MoveType    string
	QtyChange   int64 // positivo entrada, negativo salida
	StockBefore int64
	StockAfter  int64
	CreatedBy   string
	CreatedAt   time.Time
}

// StockMoveFilter filtros del historial de movimientos.
type StockMoveFilter struct {
	ProductID string
	MoveType  string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

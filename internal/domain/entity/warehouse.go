package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID        string
	Name      string
	ShortCode string // único, ej. WH
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location ubicación física dentro de una bodega (estante, muelle, jaula).
type Location struct {
	ID            string
	WarehouseID   string
	WarehouseName string // solo lectura, para listados
	Name          string
	ShortCode     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

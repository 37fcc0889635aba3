package entity

import (
	"strconv"
	"strings"
	"time"
)

// AdjustmentType indica la dirección del ajuste. La cantidad siempre es positiva.
type AdjustmentType string

// Tipos de ajuste de inventario.
const (
	AdjustmentTypeAdd        AdjustmentType = "ADD"        // suma al stock
	AdjustmentTypeRemove     AdjustmentType = "REMOVE"     // resta del stock
	AdjustmentTypeCorrection AdjustmentType = "CORRECTION" // fija el stock a un valor absoluto
)

// ParseAdjustmentType normaliza y valida un tipo de ajuste.
func ParseAdjustmentType(s string) (AdjustmentType, bool) {
	t := AdjustmentType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Valid()
}

// Valid indica si el tipo es uno de los conocidos.
func (t AdjustmentType) Valid() bool {
	switch t {
	case AdjustmentTypeAdd, AdjustmentTypeRemove, AdjustmentTypeCorrection:
		return true
	}
	return false
}

// AdjustmentStatus estado del ciclo de vida de un ajuste.
type AdjustmentStatus string

// Estados de un ajuste.
const (
	AdjustmentStatusDraft     AdjustmentStatus = "Draft"
	AdjustmentStatusPending   AdjustmentStatus = "Pending" // borrador que dejaría stock negativo
	AdjustmentStatusApplied   AdjustmentStatus = "Applied"
	AdjustmentStatusCancelled AdjustmentStatus = "Cancelled"
)

// ParseAdjustmentStatus acepta el estado sin importar mayúsculas.
func ParseAdjustmentStatus(s string) (AdjustmentStatus, bool) {
	for _, st := range []AdjustmentStatus{
		AdjustmentStatusDraft, AdjustmentStatusPending, AdjustmentStatusApplied, AdjustmentStatusCancelled,
	} {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, true
		}
	}
	return "", false
}

// Motivos ofrecidos por la consola. El campo Reason acepta texto libre.
const (
	ReasonCountCorrection = "Count Correction"
	ReasonDamaged         = "Damaged"
	ReasonSpoiled         = "Spoiled"
	ReasonFound           = "Found in Warehouse"
	ReasonOther           = "Other"
)

// Adjustment registro de un cambio de stock manual, pendiente o aplicado.
// ProductCode/ProductName y CurrentStock son copias al momento de creación y no se resincronizan.
type Adjustment struct {
	ID           string
	Reference    string // WH/ADJ/0001
	WarehouseID  string
	LocationID   string
	ProductID    string
	ProductCode  string
	ProductName  string
	CurrentStock int64
	Type         AdjustmentType
	Quantity     int64
	Reason       string
	Note         string
	Status       AdjustmentStatus
	Warning      bool
	CreatedBy    string
	CreatedAt    time.Time
	AppliedBy    string
	AppliedAt    *time.Time
	// StockBefore y StockAfter se fijan al aplicar; permiten revertir una CORRECTION.
	StockBefore *int64
	StockAfter  *int64
	RevertOf    string // ID del ajuste original si este es una reversión
}

// IsOpen indica si el ajuste todavía no afecta el stock (Draft o Pending).
func (a *Adjustment) IsOpen() bool {
	return a.Status == AdjustmentStatusDraft || a.Status == AdjustmentStatusPending
}

// CanApply indica si el ajuste puede pasar a Applied.
func (a *Adjustment) CanApply() bool { return a.IsOpen() }

// CanCancel indica si el ajuste puede pasar a Cancelled.
func (a *Adjustment) CanCancel() bool { return a.IsOpen() }

// CanRevert indica si se puede crear un ajuste compensatorio.
func (a *Adjustment) CanRevert() bool { return a.Status == AdjustmentStatusApplied }

// MarkApplied registra el efecto sobre el stock y cierra el ajuste. Warning queda reflejando
// el stock resultante real, no la proyección de la creación.
func (a *Adjustment) MarkApplied(actor string, before, after int64, at time.Time) {
	a.Status = AdjustmentStatusApplied
	a.AppliedBy = actor
	a.AppliedAt = &at
	a.StockBefore = &before
	a.StockAfter = &after
	a.Warning = after < 0
}

// ReferenceNumber número final de una referencia (WH/ADJ/0042 -> 42); 0 si no termina en dígitos.
func ReferenceNumber(ref string) int64 {
	i := len(ref)
	for i > 0 && ref[i-1] >= '0' && ref[i-1] <= '9' {
		i--
	}
	n, err := strconv.ParseInt(ref[i:], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ReferenceAfter ordena referencias por su número y luego por texto: WH/ADJ/10000 va después de WH/ADJ/9999.
func ReferenceAfter(a, b string) bool {
	na, nb := ReferenceNumber(a), ReferenceNumber(b)
	if na != nb {
		return na > nb
	}
	return a > b
}

// InverseType devuelve el tipo del ajuste compensatorio para ADD/REMOVE.
// Para CORRECTION devuelve CORRECTION: el objetivo se toma de StockBefore.
func (t AdjustmentType) InverseType() AdjustmentType {
	switch t {
	case AdjustmentTypeAdd:
		return AdjustmentTypeRemove
	case AdjustmentTypeRemove:
		return AdjustmentTypeAdd
	}
	return AdjustmentTypeCorrection
}

// AdjustmentFilter filtros para listar ajustes. Campos vacíos no filtran.
type AdjustmentFilter struct {
	Type        AdjustmentType
	Status      AdjustmentStatus
	WarehouseID string
	LocationID  string
	ProductID   string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// Matches aplica el filtro en memoria (igualdad por campo, combinados con AND).
func (f AdjustmentFilter) Matches(a *Adjustment) bool {
	if f.Type != "" && a.Type != f.Type {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.WarehouseID != "" && a.WarehouseID != f.WarehouseID {
		return false
	}
	if f.LocationID != "" && a.LocationID != f.LocationID {
		return false
	}
	if f.ProductID != "" && a.ProductID != f.ProductID {
		return false
	}
	if f.From != nil && a.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && a.CreatedAt.After(*f.To) {
		return false
	}
	return true
}

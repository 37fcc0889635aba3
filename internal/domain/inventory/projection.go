package inventory

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// Projection resultado de proyectar un ajuste sobre el stock actual.
type Projection struct {
	Current    int64
	Projected  int64
	IsNegative bool
}

// Project calcula el stock que resultaría de aplicar el ajuste (servicio de dominio, sin efectos).
//
//	ADD        → actual + cantidad
//	REMOVE     → actual - cantidad
//	CORRECTION → cantidad (valor absoluto, ignora el actual)
//
// No valida la entrada: cantidades cero o negativas también producen un número.
func Project(current int64, t entity.AdjustmentType, quantity int64) Projection {
	projected := current
	switch t {
	case entity.AdjustmentTypeAdd:
		projected = current + quantity
	case entity.AdjustmentTypeRemove:
		projected = current - quantity
	case entity.AdjustmentTypeCorrection:
		projected = quantity
	}
	return Projection{
		Current:    current,
		Projected:  projected,
		IsNegative: projected < 0,
	}
}

// Delta diferencia que el ajuste produce sobre current.
func (p Projection) Delta() int64 {
	return p.Projected - p.Current
}

package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name      string
		current   int64
		typ       entity.AdjustmentType
		qty       int64
		projected int64
		negative  bool
	}{
		{"add suma", 45, entity.AdjustmentTypeAdd, 5, 50, false},
		{"remove resta", 20, entity.AdjustmentTypeRemove, 5, 15, false},
		{"remove deja negativo", 20, entity.AdjustmentTypeRemove, 50, -30, true},
		{"remove exacto llega a cero", 7, entity.AdjustmentTypeRemove, 7, 0, false},
		{"correction fija el valor", 20, entity.AdjustmentTypeCorrection, 5, 5, false},
		{"correction a cero", 20, entity.AdjustmentTypeCorrection, 0, 0, false},
		{"correction ignora stock negativo previo", -10, entity.AdjustmentTypeCorrection, 3, 3, false},
		{"tipo desconocido no cambia", 12, entity.AdjustmentType("MOVE"), 4, 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(tt.current, tt.typ, tt.qty)
			assert.Equal(t, tt.current, p.Current)
			assert.Equal(t, tt.projected, p.Projected)
			assert.Equal(t, tt.negative, p.IsNegative)
			assert.Equal(t, tt.projected-tt.current, p.Delta())
		})
	}
}

package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "999", formatMoney("999"))
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "-$25.000", formatSigned(decimal.NewFromInt(-25000)))
	assert.Equal(t, "$1.500", formatSigned(decimal.NewFromInt(1500)))
}

func TestGenerateAdjustmentPDF_AjusteAplicado(t *testing.T) {
	before, after := int64(45), int64(50)
	applied := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	v := appinventory.Voucher{
		Adjustment: &entity.Adjustment{
			Reference:    "WH/ADJ/0001",
			ProductCode:  "P-100",
			ProductName:  "Tornillo 3/8",
			CurrentStock: 45,
			Type:         entity.AdjustmentTypeAdd,
			Quantity:     5,
			Reason:       entity.ReasonFound,
			Status:       entity.AdjustmentStatusApplied,
			CreatedBy:    "ana",
			CreatedAt:    applied.Add(-time.Hour),
			AppliedBy:    "ana",
			AppliedAt:    &applied,
			StockBefore:  &before,
			StockAfter:   &after,
		},
		Warehouse: &entity.Warehouse{Name: "Bodega Central", ShortCode: "WH"},
		Location:  &entity.Location{Name: "Estante A", ShortCode: "A1"},
		Product:   &entity.Product{Cost: decimal.NewFromInt(1200)},
	}

	out, err := NewMarotoVoucherGenerator().GenerateAdjustmentPDF(context.Background(), v)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateAdjustmentPDF_SinAjuste(t *testing.T) {
	_, err := NewMarotoVoucherGenerator().GenerateAdjustmentPDF(context.Background(), appinventory.Voucher{})
	assert.Error(t, err)
}

// Package pdf genera el comprobante imprimible de un ajuste de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bodega + código     │  Referencia + Fecha + Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTO: código, nombre, ubicación                        │
//	│  MOTIVO / NOTA                                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Cantidad | Stock antes | Stock después | Val │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de la referencia + creado/aplicado por          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appinventory "github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

var _ appinventory.VoucherGenerator = (*MarotoVoucherGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoVoucherGenerator implementa inventory.VoucherGenerator usando Maroto v2.
type MarotoVoucherGenerator struct{}

// NewMarotoVoucherGenerator construye el generador.
func NewMarotoVoucherGenerator() *MarotoVoucherGenerator { return &MarotoVoucherGenerator{} }

// GenerateAdjustmentPDF genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoVoucherGenerator) GenerateAdjustmentPDF(_ context.Context, v appinventory.Voucher) ([]byte, error) {
	if v.Adjustment == nil {
		return nil, fmt.Errorf("pdf: ajuste vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ajuste de inventario "+v.Adjustment.Reference, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(productRow(v))
	m.AddRows(reasonRow(v.Adjustment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(v))
	if v.Adjustment.Warning {
		m.AddRows(warningRow())
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(v.Adjustment))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: bodega (izq) y referencia + fecha + estado (der).
func headerRow(v appinventory.Voucher) core.Row {
	adj := v.Adjustment
	whName, whCode := "-", ""
	if v.Warehouse != nil {
		whName, whCode = v.Warehouse.Name, v.Warehouse.ShortCode
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(whName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Bodega: "+nonEmpty(whCode, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("AJUSTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(adj.Reference, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+adj.CreatedAt.Format("02/01/2006 15:04")+"   |   "+string(adj.Status), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func productRow(v appinventory.Voucher) core.Row {
	adj := v.Adjustment
	loc := "-"
	if v.Location != nil {
		loc = v.Location.Name + " (" + v.Location.ShortCode + ")"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("["+adj.ProductCode+"] "+adj.ProductName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Ubicación: "+loc, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func reasonRow(adj *entity.Adjustment) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("MOTIVO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Nota: %s", adj.Reason, nonEmpty(adj.Note, "-")),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tipo", 2, align.Left),
		h("Cantidad", 2, align.Right),
		h("Stock antes", 2, align.Right),
		h("Stock después", 3, align.Right),
		h("Valor ajuste", 3, align.Right),
	)
}

// tableDetailRow: antes/después reales si está aplicado; si no, el stock al crear.
func tableDetailRow(v appinventory.Voucher) core.Row {
	adj := v.Adjustment
	before, after := strconv.FormatInt(adj.CurrentStock, 10), "-"
	value := "-"
	if adj.StockBefore != nil && adj.StockAfter != nil {
		before = strconv.FormatInt(*adj.StockBefore, 10)
		after = strconv.FormatInt(*adj.StockAfter, 10)
		if v.Product != nil {
			delta := decimal.NewFromInt(*adj.StockAfter - *adj.StockBefore)
			value = formatSigned(v.Product.Cost.Mul(delta))
		}
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(
		cell(string(adj.Type), 2, align.Left),
		cell(strconv.FormatInt(adj.Quantity, 10), 2, align.Right),
		cell(before, 2, align.Right),
		cell(after, 3, align.Right),
		cell(value, 3, align.Right),
	)
}

func warningRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("ATENCIÓN: este ajuste deja el stock en negativo.", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWarning, Top: 2,
		}),
	))
}

// footerRow: QR con la referencia y trazabilidad de usuarios.
func footerRow(adj *entity.Adjustment) core.Row {
	applied := "Pendiente de aplicar"
	if adj.AppliedAt != nil {
		applied = fmt.Sprintf("Aplicado por %s el %s", adj.AppliedBy, adj.AppliedAt.Format("02/01/2006 15:04"))
	}
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(adj.Reference, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Creado por "+adj.CreatedBy, props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New(applied, props.Text{Size: 8, Top: 10, Left: 3, Color: colorGray}),
			text.New("Firma responsable: ______________________________", props.Text{
				Size: 8, Top: 26, Left: 3,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatSigned formatea un valor con signo y puntos de miles: -25000 → "-$25.000".
func formatSigned(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "$" + formatMoney(d.StringFixed(0))
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

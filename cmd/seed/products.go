package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type seedProduct struct {
	ID   string
	Code string
	Name string
	Cost decimal.Decimal
}

// parseProducts lee filas code;name;cost. Omite la cabecera si la primera celda es "code"
// y acepta coma decimal en el costo ("12,50").
func parseProducts(r io.Reader, sep rune) ([]seedProduct, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []seedProduct
	seen := map[string]int{}
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "code") {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperan al menos code y name", line)
		}
		code := strings.TrimSpace(rec[0])
		name := strings.TrimSpace(rec[1])
		if code == "" || name == "" {
			return nil, fmt.Errorf("línea %d: code y name son requeridos", line)
		}
		cost := decimal.Zero
		if len(rec) > 2 && strings.TrimSpace(rec[2]) != "" {
			raw := strings.ReplaceAll(strings.TrimSpace(rec[2]), ",", ".")
			cost, err = decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("línea %d: costo inválido %q", line, rec[2])
			}
			if cost.IsNegative() {
				return nil, fmt.Errorf("línea %d: costo negativo", line)
			}
		}
		key := strings.ToLower(code)
		if prev, dup := seen[key]; dup {
			// la última fila gana
			out[prev] = seedProduct{ID: out[prev].ID, Code: code, Name: name, Cost: cost}
			continue
		}
		seen[key] = len(out)
		out = append(out, seedProduct{ID: uuid.New().String(), Code: code, Name: name, Cost: cost})
	}
	return out, nil
}

// writeSQL escribe un INSERT idempotente por producto. El stock no se toca: solo cambia por ajustes.
func writeSQL(w io.Writer, products []seedProduct) error {
	if _, err := io.WriteString(w, "-- Productos generados por cmd/seed\n\n"); err != nil {
		return err
	}
	for _, p := range products {
		_, err := fmt.Fprintf(w,
			"INSERT INTO products (id, code, name, cost) VALUES ('%s', '%s', '%s', %s)\n"+
				"ON CONFLICT ((LOWER(code))) DO UPDATE SET name = EXCLUDED.name, cost = EXCLUDED.cost, updated_at = NOW();\n",
			p.ID, escapeSQL(p.Code), escapeSQL(p.Name), p.Cost.StringFixed(4))
		if err != nil {
			return err
		}
	}
	return nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

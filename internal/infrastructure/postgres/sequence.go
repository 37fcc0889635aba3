package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/application/inventory"
)

var _ inventory.ReferenceSequence = (*Sequence)(nil)

// Sequence contador atómico en la tabla reference_counters.
// Usa su propio Querier (normalmente el pool): un número consumido no se devuelve si la tx del llamador falla.
type Sequence struct {
	q Querier
}

// NewSequence construye la secuencia.
func NewSequence(q Querier) *Sequence {
	return &Sequence{q: q}
}

// Next incrementa y devuelve el contador; crea la fila en 1 si no existe.
func (s *Sequence) Next(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO reference_counters (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = reference_counters.value + 1
		RETURNING value`
	var n int64
	if err := s.q.QueryRow(ctx, query, name).Scan(&n); err != nil {
		return 0, fmt.Errorf("next reference %s: %w", name, err)
	}
	return n, nil
}

// Current devuelve el último valor entregado (0 si la secuencia no se ha usado).
func (s *Sequence) Current(ctx context.Context, name string) (int64, error) {
	var n int64
	err := s.q.QueryRow(ctx, `SELECT COALESCE(MAX(value), 0) FROM reference_counters WHERE name = $1`, name).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("current reference %s: %w", name, err)
	}
	return n, nil
}

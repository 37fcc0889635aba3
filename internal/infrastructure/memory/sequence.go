package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stockflow-api/internal/application/inventory"
)

var _ inventory.ReferenceSequence = (*Sequence)(nil)

// Sequence contador en memoria por nombre de secuencia.
type Sequence struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewSequence crea una secuencia que empieza en 1.
func NewSequence() *Sequence {
	return &Sequence{counters: map[string]int64{}}
}

// Next incrementa y devuelve el contador de name.
func (s *Sequence) Next(ctx context.Context, name string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
	return s.counters[name], nil
}

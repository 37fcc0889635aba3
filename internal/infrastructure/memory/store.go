// Package memory implementa los puertos de persistencia en memoria.
// Se usa como backend con STORE_DRIVER=memory y como fake en tests de casos de uso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// Store estado compartido de todos los repositorios en memoria.
type Store struct {
	mu          sync.RWMutex
	adjustments map[string]*entity.Adjustment
	products    map[string]*entity.Product
	warehouses  map[string]*entity.Warehouse
	locations   map[string]*entity.Location
	users       map[string]*entity.User
	moves       []*entity.StockMove
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		adjustments: map[string]*entity.Adjustment{},
		products:    map[string]*entity.Product{},
		warehouses:  map[string]*entity.Warehouse{},
		locations:   map[string]*entity.Location{},
		users:       map[string]*entity.User{},
	}
}

// read ejecuta fn con lectura protegida salvo que el llamador ya tenga el lock (tx).
func (s *Store) read(locked bool, fn func()) {
	if !locked {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(locked bool, fn func() error) error {
	if !locked {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn()
}

type snapshot struct {
	adjustments map[string]*entity.Adjustment
	products    map[string]*entity.Product
	moves       []*entity.StockMove
}

// snapshot copia lo que una tx puede modificar; las entidades se guardan como copias, así que basta con copiar los mapas.
func (s *Store) snapshot() snapshot {
	snap := snapshot{
		adjustments: make(map[string]*entity.Adjustment, len(s.adjustments)),
		products:    make(map[string]*entity.Product, len(s.products)),
		moves:       append([]*entity.StockMove(nil), s.moves...),
	}
	for k, v := range s.adjustments {
		snap.adjustments[k] = v
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.adjustments = snap.adjustments
	s.products = snap.products
	s.moves = snap.moves
}

// TxRunner serializa las transacciones con el lock exclusivo del store y descarta los cambios si fn falla.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repos atados a la "transacción" en memoria.
func (r *TxRunner) Run(ctx context.Context, fn func(
	adjRepo repository.AdjustmentRepository,
	productRepo repository.ProductRepository,
	moveRepo repository.StockMoveRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.snapshot()
	err := fn(
		&AdjustmentRepo{s: r.s, locked: true},
		&ProductRepo{s: r.s, locked: true},
		&StockMoveRepo{s: r.s, locked: true},
	)
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(list) {
			return []T{}
		}
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

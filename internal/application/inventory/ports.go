package inventory

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad de leer-proyectar-escribir-marcar en Apply/Revert.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		adjRepo repository.AdjustmentRepository,
		productRepo repository.ProductRepository,
		moveRepo repository.StockMoveRepository,
	) error) error
}

// ReferenceSequence entrega números estrictamente crecientes por nombre de secuencia.
// Puede dejar huecos (p. ej. si la transacción que lo consumió falla).
type ReferenceSequence interface {
	Next(ctx context.Context, name string) (int64, error)
}

package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/redis/go-redis/v9"
)

var _ inventory.ReferenceSequence = (*Sequence)(nil)

// Sequence secuencia de referencias sobre INCR de Redis (atómico entre instancias).
type Sequence struct {
	client redis.Cmdable
	prefix string
}

// NewSequence construye la secuencia; las claves quedan como <prefix><name>.
func NewSequence(client redis.Cmdable, prefix string) *Sequence {
	if prefix == "" {
		prefix = "stockflow:seq:"
	}
	return &Sequence{client: client, prefix: prefix}
}

// Next incrementa y devuelve el contador.
func (s *Sequence) Next(ctx context.Context, name string) (int64, error) {
	n, err := s.client.Incr(ctx, s.prefix+name).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", name, err)
	}
	return n, nil
}

// Seed fija el contador en value si es menor (útil al migrar desde otra secuencia).
func (s *Sequence) Seed(ctx context.Context, name string, value int64) error {
	key := s.prefix + name
	cur, err := s.client.Get(ctx, key).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis get %s: %w", name, err)
	}
	if cur >= value {
		return nil
	}
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", name, err)
	}
	return nil
}

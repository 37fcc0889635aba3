package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/cache"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/jhoicas/stockflow-api/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// store repositorios, TxRunner y secuencia según STORE_DRIVER / SEQUENCE_DRIVER.
type store struct {
	users       repository.UserRepository
	warehouses  repository.WarehouseRepository
	locations   repository.LocationRepository
	products    repository.ProductRepository
	adjustments repository.AdjustmentRepository
	moves       repository.StockMoveRepository
	txRunner    inventory.TxRunner
	sequence    inventory.ReferenceSequence

	pool  *pgxpool.Pool
	redis *redis.Client
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*store, error) {
	st := &store{}
	var pgSeq *postgres.Sequence

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		st.pool = pool
		if cfg.Store.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
				st.Close()
				return nil, fmt.Errorf("migraciones: %w", err)
			}
		}
		st.users = postgres.NewUserRepository(pool)
		st.warehouses = postgres.NewWarehouseRepository(pool)
		st.locations = postgres.NewLocationRepository(pool)
		st.products = postgres.NewProductRepository(pool)
		st.adjustments = postgres.NewAdjustmentRepository(pool)
		st.moves = postgres.NewStockMoveRepository(pool)
		st.txRunner = postgres.NewTxRunner(pool)
		pgSeq = postgres.NewSequence(pool)
	default:
		mem := memory.NewStore()
		st.users = memory.NewUserRepository(mem)
		st.warehouses = memory.NewWarehouseRepository(mem)
		st.locations = memory.NewLocationRepository(mem)
		st.products = memory.NewProductRepository(mem)
		st.adjustments = memory.NewAdjustmentRepository(mem)
		st.moves = memory.NewStockMoveRepository(mem)
		st.txRunner = memory.NewTxRunner(mem)
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
	}

	switch cfg.Store.SequenceDriver {
	case config.DriverPostgres:
		st.sequence = pgSeq
	case config.DriverRedis:
		client, err := cache.New(ctx, cfg.Redis)
		if err != nil {
			st.Close()
			return nil, err
		}
		st.redis = client
		seq := cache.NewSequence(client, "")
		// al pasar de la secuencia en Postgres a Redis no se deben repetir referencias
		if pgSeq != nil {
			cur, err := pgSeq.Current(ctx, inventory.ReferenceSequenceName)
			if err != nil {
				st.Close()
				return nil, err
			}
			if err := seq.Seed(ctx, inventory.ReferenceSequenceName, cur); err != nil {
				st.Close()
				return nil, err
			}
		}
		st.sequence = seq
	default:
		st.sequence = memory.NewSequence()
	}
	return st, nil
}

// Ping verifica los backends externos configurados.
func (s *store) Ping(ctx context.Context) error {
	if s.pool != nil {
		if err := s.pool.Ping(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

func (s *store) Close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
}

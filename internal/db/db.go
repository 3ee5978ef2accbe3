package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"aura-mind/internal/config"
)

// NewPool construye el pool de conexiones dimensionado para el pipeline:
// un recómputo termina en una ráfaga de upserts de embeddings desde los
// workers, más las lecturas de la API de terapeutas en paralelo.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = maxConnsFor(cfg.WorkerPoolSize)
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// maxConnsFor acompaña al pool de workers con margen para las lecturas de la
// API, con un piso para instalaciones que corren con pocos workers.
func maxConnsFor(workers int) int32 {
	conns := workers + 4
	if conns < 8 {
		conns = 8
	}
	return int32(conns)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

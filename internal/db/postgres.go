package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"agency-desk/internal/config/configs"
)

const applicationName = "agency-desk"

// NewPostgresPool opens a pgxpool.Pool for cfg and pings the database
// with a 5 second timeout. Sessions run in UTC so DATE and TIMESTAMPTZ
// values round trip unchanged. The caller must close the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func poolConfig(cfg configs.Postgres) (*pgxpool.Config, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConf.MinConns = cfg.MinConns
	}
	if cfg.MaxConnIdle > 0 {
		poolConf.MaxConnIdleTime = cfg.MaxConnIdle
	}
	params := poolConf.ConnConfig.RuntimeParams
	if _, ok := params["application_name"]; !ok {
		params["application_name"] = applicationName
	}
	params["timezone"] = "UTC"
	return poolConf, nil
}

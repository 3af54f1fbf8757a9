// Package app wires configuration, logging and the catalog source into a
// session and drives it with line commands.
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-demo/internal/catalog"
	"github.com/nikolayk812/storefront-demo/internal/config"
	"github.com/nikolayk812/storefront-demo/internal/repository"
	"go.uber.org/zap"
)

type Log interface {
	Debug(string, ...zap.Field)
	Info(string, ...zap.Field)
	Warn(string, ...zap.Field)
}

// LoadCatalog reads the catalog once from Postgres when a DSN is configured,
// otherwise from the built-in sample data.
func LoadCatalog(ctx context.Context, opts *config.Options, log Log) (*catalog.Catalog, error) {
	if opts.DataBaseDSN() == "" {
		log.Info("using static sample catalog")
		return catalog.Load(ctx, repository.NewStaticCatalog())
	}

	pool, err := pgxpool.New(ctx, opts.DataBaseDSN())
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	// the catalog is immutable once loaded, the pool is not needed afterwards
	defer pool.Close()

	repo, err := repository.NewCatalog(pool)
	if err != nil {
		return nil, fmt.Errorf("repository.NewCatalog: %w", err)
	}

	c, err := catalog.Load(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}

	log.Info("catalog loaded from database", zap.Int("products", len(c.Products())))

	return c, nil
}

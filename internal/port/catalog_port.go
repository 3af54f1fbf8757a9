package port

import (
	"context"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

type CatalogRepository interface {
	GetCatalog(ctx context.Context) (domain.CatalogSnapshot, error)
}

package catalog

import (
	"fmt"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

const DefaultRelatedLimit = 4

func FindByID(products []domain.Product, id int64) (domain.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Product{}, fmt.Errorf("product[%d]: %w", id, domain.ErrNotFound)
}

// Related returns up to limit products from the same category as product,
// excluding product itself, in catalog order.
func Related(products []domain.Product, product domain.Product, limit int) []domain.Product {
	var result []domain.Product
	if limit <= 0 {
		return result
	}

	for _, p := range products {
		if p.Category != product.Category || p.ID == product.ID {
			continue
		}

		result = append(result, p)
		if len(result) == limit {
			break
		}
	}

	return result
}

// Package catalog holds the read-only product list of a session together with
// the search and detail lookups over it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"golang.org/x/text/currency"
)

type Catalog struct {
	products []domain.Product
	reviews  map[int64][]domain.Review
	currency currency.Unit
}

// Detail is everything the product page shows besides the product itself.
type Detail struct {
	Product domain.Product
	Related []domain.Product
	Reviews []domain.Review
}

func New(products []domain.Product, reviews []domain.Review) (*Catalog, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("products are empty")
	}

	if err := validate(products); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	c := &Catalog{
		products: slices.Clone(products),
		reviews:  make(map[int64][]domain.Review),
		currency: products[0].Price.Currency,
	}

	for _, r := range reviews {
		if _, err := FindByID(c.products, r.ProductID); err != nil {
			return nil, fmt.Errorf("review[%d]: %w", r.ID, err)
		}
		if r.Rating < 1 || r.Rating > 5 {
			return nil, fmt.Errorf("review[%d] rating[%d] is out of range", r.ID, r.Rating)
		}

		c.reviews[r.ProductID] = append(c.reviews[r.ProductID], r)
	}

	return c, nil
}

// Load builds a catalog from the given source.
func Load(ctx context.Context, repo port.CatalogRepository) (*Catalog, error) {
	snapshot, err := repo.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.GetCatalog: %w", err)
	}

	return New(snapshot.Products, snapshot.Reviews)
}

// Products returns a copy of the catalog in catalog order.
func (c *Catalog) Products() []domain.Product {
	return slices.Clone(c.products)
}

func (c *Catalog) Currency() currency.Unit {
	return c.currency
}

func (c *Catalog) Filter(term string) []domain.Product {
	return Filter(c.Products(), term)
}

func (c *Catalog) FindByID(id int64) (domain.Product, error) {
	return FindByID(c.products, id)
}

func (c *Catalog) Related(product domain.Product, limit int) []domain.Product {
	return Related(c.products, product, limit)
}

func (c *Catalog) Reviews(productID int64) []domain.Review {
	return slices.Clone(c.reviews[productID])
}

func (c *Catalog) Detail(id int64, relatedLimit int) (Detail, error) {
	p, err := c.FindByID(id)
	if err != nil {
		return Detail{}, err
	}

	return Detail{
		Product: p,
		Related: c.Related(p, relatedLimit),
		Reviews: c.Reviews(id),
	}, nil
}

func validate(products []domain.Product) error {
	seen := make(map[int64]struct{}, len(products))
	first := products[0].Price

	var errs []error
	for _, p := range products {
		if p.ID <= 0 {
			errs = append(errs, fmt.Errorf("product[%d] id is not positive", p.ID))
		}
		if _, ok := seen[p.ID]; ok {
			errs = append(errs, fmt.Errorf("product[%d] is duplicated", p.ID))
		}
		seen[p.ID] = struct{}{}

		if p.Price.Amount.IsNegative() {
			errs = append(errs, fmt.Errorf("product[%d] price is negative", p.ID))
		}
		if !p.Price.SameCurrency(first) {
			errs = append(errs, fmt.Errorf("product[%d] currency[%s]: %w", p.ID, p.Price.Currency, domain.ErrCurrencyMismatch))
		}
		if p.Rating < 0 || p.Rating > 5 {
			errs = append(errs, fmt.Errorf("product[%d] rating is out of range", p.ID))
		}
		if p.Reviews < 0 {
			errs = append(errs, fmt.Errorf("product[%d] reviews count is negative", p.ID))
		}
	}

	return errors.Join(errs...)
}

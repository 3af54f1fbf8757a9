package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-demo/internal/db"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) (port.CatalogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &catalogRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewCatalogWithTx(tx pgx.Tx) port.CatalogRepository {
	return &catalogRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *catalogRepository) GetCatalog(ctx context.Context) (domain.CatalogSnapshot, error) {
	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.CatalogSnapshot, error) {
		dbProducts, err := q.ListProducts(ctx)
		if err != nil {
			return domain.CatalogSnapshot{}, fmt.Errorf("q.ListProducts: %w", err)
		}

		products, err := mapProductsToDomain(dbProducts)
		if err != nil {
			return domain.CatalogSnapshot{}, fmt.Errorf("mapProductsToDomain: %w", err)
		}

		dbReviews, err := q.ListReviews(ctx)
		if err != nil {
			return domain.CatalogSnapshot{}, fmt.Errorf("q.ListReviews: %w", err)
		}

		return domain.CatalogSnapshot{
			Products: products,
			Reviews:  mapReviewsToDomain(dbReviews),
		}, nil
	})
}

func mapProductToDomain(row db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Category:    row.Category,
		Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Image:       row.Image,
		Rating:      row.Rating,
		Reviews:     int(row.ReviewsCount),
	}, nil
}

func mapProductsToDomain(rows []db.Product) ([]domain.Product, error) {
	var products []domain.Product

	for _, row := range rows {
		product, err := mapProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}

func mapReviewsToDomain(rows []db.Review) []domain.Review {
	var reviews []domain.Review

	for _, row := range rows {
		reviews = append(reviews, domain.Review{
			ID:        row.ID,
			ProductID: row.ProductID,
			Author:    row.Author,
			Rating:    int(row.Rating),
			Text:      row.Body,
			Date:      row.ReviewDate,
		})
	}

	return reviews
}

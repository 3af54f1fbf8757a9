package repository

import (
	"context"
	"slices"
	"time"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type staticCatalog struct {
	products []domain.Product
	reviews  []domain.Review
}

// NewStaticCatalog serves the built-in sample products.
func NewStaticCatalog() port.CatalogRepository {
	products := sampleProducts()

	return &staticCatalog{
		products: products,
		reviews:  sampleReviews(products),
	}
}

func (r *staticCatalog) GetCatalog(_ context.Context) (domain.CatalogSnapshot, error) {
	return domain.CatalogSnapshot{
		Products: slices.Clone(r.products),
		Reviews:  slices.Clone(r.reviews),
	}, nil
}

func usd(amount string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), Currency: currency.USD}
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Wireless Bluetooth Headphones Premium Noise Cancelling",
			Description: "High-quality wireless headphones with active noise cancellation, 30-hour battery life, and premium comfort padding",
			Category:    "Electronics",
			Price:       usd("79.99"),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop",
			Rating:      4.5,
			Reviews:     1284,
		},
		{
			ID:          2,
			Name:        "Smartphone with 128GB Storage - Latest Model",
			Description: "Latest smartphone with advanced triple-camera system, all-day battery life, and lightning-fast performance",
			Category:    "Electronics",
			Price:       usd("599.99"),
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=400&fit=crop",
			Rating:      4.8,
			Reviews:     2567,
		},
		{
			ID:          3,
			Name:        "Premium Colombian Coffee Beans - Single Origin",
			Description: "Freshly roasted premium coffee beans from the mountains of Colombia. Rich, smooth flavor with notes of chocolate and caramel",
			Category:    "Food & Beverages",
			Price:       usd("24.99"),
			Image:       "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=400&h=400&fit=crop",
			Rating:      4.3,
			Reviews:     892,
		},
		{
			ID:          4,
			Name:        "High-Performance Laptop Computer - 16GB RAM",
			Description: "Professional laptop perfect for work and gaming. Features Intel i7 processor, 16GB RAM, and dedicated graphics card",
			Category:    "Electronics",
			Price:       usd("1299.99"),
			Image:       "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?w=400&h=400&fit=crop",
			Rating:      4.7,
			Reviews:     3421,
		},
		{
			ID:          5,
			Name:        "Modern 3-Seater Living Room Sofa - Fabric",
			Description: "Elegant and comfortable 3-seater sofa with premium fabric upholstery. Perfect centerpiece for any modern living room",
			Category:    "Furniture",
			Price:       usd("899.99"),
			Image:       "https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=400&h=400&fit=crop",
			Rating:      4.6,
			Reviews:     756,
		},
		{
			ID:          6,
			Name:        "Complete Pet Care Essentials Kit",
			Description: "Everything you need for your pet's health and happiness. Includes grooming tools, toys, treats, and care accessories",
			Category:    "Pet Supplies",
			Price:       usd("49.99"),
			Image:       "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=400&h=400&fit=crop",
			Rating:      4.4,
			Reviews:     1674,
		},
		{
			ID:          7,
			Name:        "Professional Wireless Gaming Mouse",
			Description: "High-precision wireless gaming mouse with customizable RGB lighting and 12000 DPI sensor",
			Category:    "Electronics",
			Price:       usd("89.99"),
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400&h=400&fit=crop",
			Rating:      4.6,
			Reviews:     945,
		},
		{
			ID:          8,
			Name:        "Organic Green Tea Collection - 50 Bags",
			Description: "Premium organic green tea collection with antioxidants. Perfect for daily wellness and relaxation",
			Category:    "Food & Beverages",
			Price:       usd("19.99"),
			Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop",
			Rating:      4.2,
			Reviews:     623,
		},
	}
}

// Every sample product shows the same three reviews.
func sampleReviews(products []domain.Product) []domain.Review {
	templates := []domain.Review{
		{Author: "John D.", Rating: 5, Text: "Excellent product! Exceeded my expectations.", Date: day(2024, time.December, 15)},
		{Author: "Sarah M.", Rating: 4, Text: "Good quality, fast shipping. Would recommend.", Date: day(2024, time.December, 10)},
		{Author: "Mike R.", Rating: 5, Text: "Perfect for my needs. Great value for money.", Date: day(2024, time.December, 5)},
	}

	reviews := make([]domain.Review, 0, len(products)*len(templates))
	for _, p := range products {
		for _, tmpl := range templates {
			tmpl.ID = int64(len(reviews) + 1)
			tmpl.ProductID = p.ID
			reviews = append(reviews, tmpl)
		}
	}

	return reviews
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

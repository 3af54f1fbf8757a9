package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront-demo/internal/catalog"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestFilter(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		name    string
		term    string
		wantIDs []int64
	}{
		{
			name:    "empty term: all products",
			term:    "",
			wantIDs: []int64{1, 2, 3, 4, 5, 6},
		},
		{
			name:    "whitespace term: only names containing it",
			term:    "   ",
			wantIDs: nil,
		},
		{
			name:    "category lower case: electronics only",
			term:    "electronics",
			wantIDs: []int64{1, 2, 4},
		},
		{
			name:    "name mixed case: matched",
			term:    "CoFfEe",
			wantIDs: []int64{3},
		},
		{
			name:    "substring in names: order preserved",
			term:    "o",
			wantIDs: []int64{1, 2, 3, 4, 5},
		},
		{
			name:    "category with ampersand: matched",
			term:    "food & bev",
			wantIDs: []int64{3},
		},
		{
			name:    "description is not searched: no match",
			term:    "noise cancellation",
			wantIDs: nil,
		},
		{
			name:    "no match: empty",
			term:    "spaceship",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(products, tt.term)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestFilter_UnicodeFolding(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Road Bike", Category: "Sport"},
		{ID: 2, Name: "ÉCLAIR", Category: "Bakery"},
		{ID: 3, Name: "Tea", Category: "ΚΑΦΕΣ"},
	}

	assert.Equal(t, []int64{2}, ids(catalog.Filter(products, "éclair")))
	assert.Equal(t, []int64{3}, ids(catalog.Filter(products, "καφ")))
}

func TestFilter_LowercaseOnly(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Straße Bike", Category: "Sport"},
	}

	assert.Equal(t, []int64{1}, ids(catalog.Filter(products, "STRAßE")))
	assert.Nil(t, ids(catalog.Filter(products, "strasse")))
}

func TestFilter_TermIsNotTrimmed(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Steamer", Category: "Kitchen"},
		{ID: 2, Name: "Green Tea Collection", Category: "Food"},
	}

	tests := []struct {
		name    string
		term    string
		wantIDs []int64
	}{
		{name: "spaces only: matches names with spaces", term: " ", wantIDs: []int64{2}},
		{name: "three spaces: no match", term: "   ", wantIDs: nil},
		{name: "trailing space: not widened", term: "tea ", wantIDs: []int64{2}},
		{name: "no space: both match", term: "tea", wantIDs: []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIDs, ids(catalog.Filter(products, tt.term)))
		})
	}
}

func TestFilter_ResultsContainTerm(t *testing.T) {
	for range 50 {
		products := randomProducts(gofakeit.IntRange(1, 30))
		terms := []string{
			gofakeit.Letter(),
			" ",
			gofakeit.Letter() + " ",
			" " + gofakeit.Letter(),
			substring(products[gofakeit.IntRange(0, len(products)-1)].Name),
		}

		for _, term := range terms {
			got := catalog.Filter(products, term)
			needle := strings.ToLower(term)

			matched := make(map[int64]bool, len(got))
			for _, p := range got {
				matched[p.ID] = true
				assert.True(t, containsLower(p, needle), "term %q returned product[%d] %q", term, p.ID, p.Name)
			}

			for _, p := range products {
				if !matched[p.ID] {
					assert.False(t, containsLower(p, needle), "term %q skipped product[%d] %q", term, p.ID, p.Name)
				}
			}
		}
	}
}

func TestFilter_IsSubsequence(t *testing.T) {
	for range 50 {
		products := randomProducts(gofakeit.IntRange(0, 30))
		term := gofakeit.Letter()

		got := catalog.Filter(products, term)

		// every result appears in the input, in the same relative order
		pos := 0
		for _, p := range got {
			for pos < len(products) && products[pos].ID != p.ID {
				pos++
			}
			require.Less(t, pos, len(products), "product[%d] is not in input order", p.ID)
			pos++
		}
	}
}

func TestFindByID(t *testing.T) {
	products := sampleProducts()

	p, err := catalog.FindByID(products, 4)
	require.NoError(t, err)
	assert.Equal(t, "Modern Laptop Computer", p.Name)

	_, err = catalog.FindByID(products, 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "product[999]: not found")
}

func TestRelated(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Category: "Electronics"},
		{ID: 2, Category: "Electronics"},
		{ID: 3, Category: "Furniture"},
		{ID: 4, Category: "Electronics"},
		{ID: 5, Category: "Electronics"},
		{ID: 6, Category: "Electronics"},
		{ID: 7, Category: "Electronics"},
		{ID: 8, Category: "Pets"},
	}

	tests := []struct {
		name    string
		product domain.Product
		limit   int
		wantIDs []int64
	}{
		{
			name:    "five others: capped at four",
			product: products[0],
			limit:   catalog.DefaultRelatedLimit,
			wantIDs: []int64{2, 4, 5, 6},
		},
		{
			name:    "excludes itself: catalog order",
			product: products[3],
			limit:   catalog.DefaultRelatedLimit,
			wantIDs: []int64{1, 2, 5, 6},
		},
		{
			name:    "larger limit: all others",
			product: products[6],
			limit:   10,
			wantIDs: []int64{1, 2, 4, 5, 6},
		},
		{
			name:    "no other in category: empty",
			product: products[2],
			limit:   catalog.DefaultRelatedLimit,
			wantIDs: nil,
		},
		{
			name:    "zero limit: empty",
			product: products[0],
			limit:   0,
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Related(products, tt.product, tt.limit)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestNew(t *testing.T) {
	valid := sampleProducts()

	tests := []struct {
		name      string
		products  []domain.Product
		reviews   []domain.Review
		wantError string
	}{
		{
			name:     "valid catalog: ok",
			products: valid,
			reviews:  []domain.Review{{ID: 1, ProductID: 1, Rating: 5}},
		},
		{
			name:      "empty catalog: error",
			wantError: "products are empty",
		},
		{
			name:      "duplicate id: error",
			products:  []domain.Product{valid[0], valid[0]},
			wantError: "validate: product[1] is duplicated",
		},
		{
			name:      "non-positive id: error",
			products:  []domain.Product{withID(valid[0], 0)},
			wantError: "validate: product[0] id is not positive",
		},
		{
			name:      "negative price: error",
			products:  []domain.Product{withPrice(valid[0], "-1.00", currency.USD)},
			wantError: "validate: product[1] price is negative",
		},
		{
			name:      "mixed currencies: error",
			products:  []domain.Product{valid[0], withPrice(valid[1], "1.00", currency.EUR)},
			wantError: "validate: product[2] currency[EUR]: currency mismatch",
		},
		{
			name:      "rating out of range: error",
			products:  []domain.Product{withRating(valid[0], 5.5)},
			wantError: "validate: product[1] rating is out of range",
		},
		{
			name:      "review for unknown product: error",
			products:  valid,
			reviews:   []domain.Review{{ID: 7, ProductID: 99, Rating: 4}},
			wantError: "review[7]: product[99]: not found",
		},
		{
			name:      "review rating out of range: error",
			products:  valid,
			reviews:   []domain.Review{{ID: 8, ProductID: 1, Rating: 0}},
			wantError: "review[8] rating[0] is out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.New(tt.products, tt.reviews)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, ids(tt.products), ids(c.Products()))
		})
	}
}

func TestCatalog_IsReadOnly(t *testing.T) {
	products := sampleProducts()

	c, err := catalog.New(products, nil)
	require.NoError(t, err)

	products[0].Name = "changed"
	got := c.Products()
	got[1].Name = "changed too"

	assert.Equal(t, "Wireless Bluetooth Headphones", c.Products()[0].Name)
	assert.Equal(t, "Smartphone with 128GB Storage", c.Products()[1].Name)
}

func TestCatalog_Detail(t *testing.T) {
	c, err := catalog.Load(t.Context(), repository.NewStaticCatalog())
	require.NoError(t, err)

	detail, err := c.Detail(1, catalog.DefaultRelatedLimit)
	require.NoError(t, err)

	assert.Equal(t, int64(1), detail.Product.ID)
	assert.Equal(t, []int64{2, 4, 7}, ids(detail.Related))
	require.Len(t, detail.Reviews, 3)
	assert.Equal(t, "John D.", detail.Reviews[0].Author)

	_, err = c.Detail(999, catalog.DefaultRelatedLimit)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_Filter(t *testing.T) {
	c, err := catalog.Load(t.Context(), repository.NewStaticCatalog())
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 4, 7}, ids(c.Filter("electronics")))
	assert.Len(t, c.Filter(""), 8)
	assert.Equal(t, "USD", c.Currency().String())
}

func TestLoad_RepositoryError(t *testing.T) {
	_, err := catalog.Load(t.Context(), failingRepository{})
	require.EqualError(t, err, "repo.GetCatalog: connection refused")
}

type failingRepository struct{}

func (failingRepository) GetCatalog(context.Context) (domain.CatalogSnapshot, error) {
	return domain.CatalogSnapshot{}, errors.New("connection refused")
}

// gofakeit product names and categories are ASCII, so strings.ToLower agrees with Filter.
func containsLower(p domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) || strings.Contains(strings.ToLower(p.Category), needle)
}

func substring(s string) string {
	if s == "" {
		return s
	}

	from := gofakeit.IntRange(0, len(s)-1)
	to := gofakeit.IntRange(from+1, len(s))

	return s[from:to]
}

func ids(products []domain.Product) []int64 {
	var result []int64
	for _, p := range products {
		result = append(result, p.ID)
	}

	return result
}

func usd(amount string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), Currency: currency.USD}
}

func withID(p domain.Product, id int64) domain.Product {
	p.ID = id
	return p
}

func withPrice(p domain.Product, amount string, cur currency.Unit) domain.Product {
	p.Price = domain.Money{Amount: decimal.RequireFromString(amount), Currency: cur}
	return p
}

func withRating(p domain.Product, rating float64) domain.Product {
	p.Rating = rating
	return p
}

func randomProducts(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := range n {
		products = append(products, domain.Product{
			ID:       int64(i + 1),
			Name:     gofakeit.ProductName(),
			Category: gofakeit.ProductCategory(),
			Price:    usd("1.00"),
		})
	}

	return products
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Wireless Bluetooth Headphones", Category: "Electronics", Price: usd("79.99"), Rating: 4.5, Reviews: 128},
		{ID: 2, Name: "Smartphone with 128GB Storage", Category: "Electronics", Price: usd("599.99"), Rating: 4.8, Reviews: 256},
		{ID: 3, Name: "Premium Coffee Beans", Category: "Food & Beverages", Price: usd("24.99"), Rating: 4.3, Reviews: 89},
		{ID: 4, Name: "Modern Laptop Computer", Category: "Electronics", Price: usd("1299.99"), Rating: 4.7, Reviews: 342},
		{ID: 5, Name: "Comfortable Living Room Sofa", Category: "Furniture", Price: usd("899.99"), Rating: 4.6, Reviews: 76},
		{ID: 6, Name: "Pet Care Essentials Kit", Category: "Pet Supplies", Price: usd("49.99"), Rating: 4.4, Reviews: 167},
	}
}

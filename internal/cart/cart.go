// Package cart derives new cart values from add, remove and set-quantity events.
// Every operation returns a fresh cart and leaves its input untouched.
package cart

import (
	"fmt"
	"slices"
	"time"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func New(cur currency.Unit) domain.Cart {
	return domain.Cart{Currency: cur}
}

// AddItem increments the quantity of the entry for p, or appends a new entry with quantity 1.
func AddItem(c domain.Cart, p domain.Product) (domain.Cart, error) {
	if len(c.Items) == 0 && c.Currency == (currency.Unit{}) {
		c.Currency = p.Price.Currency
	}

	if p.Price.Currency.String() != c.Currency.String() {
		return c, fmt.Errorf("product[%d] priced in %s, cart in %s: %w",
			p.ID, p.Price.Currency, c.Currency, domain.ErrCurrencyMismatch)
	}

	idx := indexOf(c.Items, p.ID)
	if idx < 0 {
		return domain.Cart{
			Currency: c.Currency,
			Items: append(slices.Clone(c.Items), domain.CartItem{
				Product:  p,
				Quantity: 1,
				AddedAt:  time.Now(),
			}),
		}, nil
	}

	items := slices.Clone(c.Items)
	items[idx].Quantity++

	return domain.Cart{Currency: c.Currency, Items: items}, nil
}

// RemoveItem deletes the entry for productID. Missing entries are not an error.
func RemoveItem(c domain.Cart, productID int64) domain.Cart {
	if indexOf(c.Items, productID) < 0 {
		return c
	}

	var items []domain.CartItem
	for _, item := range c.Items {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}

	return domain.Cart{Currency: c.Currency, Items: items}
}

// SetQuantity replaces the quantity of an existing entry; zero removes it.
// Negative quantities are rejected and c is returned as is.
func SetQuantity(c domain.Cart, productID int64, qty int) (domain.Cart, error) {
	if qty < 0 {
		return c, fmt.Errorf("quantity[%d] for product[%d]: %w", qty, productID, domain.ErrInvalidQuantity)
	}

	if qty == 0 {
		return RemoveItem(c, productID), nil
	}

	idx := indexOf(c.Items, productID)
	if idx < 0 {
		return c, nil
	}

	items := slices.Clone(c.Items)
	items[idx].Quantity = qty

	return domain.Cart{Currency: c.Currency, Items: items}, nil
}

func TotalItems(c domain.Cart) int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

func TotalPrice(c domain.Cart) domain.Money {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal().Amount)
	}

	return domain.Money{Amount: total, Currency: c.Currency}
}

func indexOf(items []domain.CartItem, productID int64) int {
	return slices.IndexFunc(items, func(item domain.CartItem) bool {
		return item.Product.ID == productID
	})
}

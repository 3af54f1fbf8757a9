package domain

import (
	"time"

	"golang.org/x/text/currency"
)

// Cart is ordered by insertion; product IDs are unique within Items.
type Cart struct {
	Currency currency.Unit
	Items    []CartItem
}

// CartItem holds a copy of the product taken when it was first added.
type CartItem struct {
	Product  Product
	Quantity int

	AddedAt time.Time
}

func (i CartItem) Subtotal() Money {
	return i.Product.Price.Mul(i.Quantity)
}

package domain

import "time"

type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Price       Money
	Image       string
	Rating      float64
	Reviews     int
}

type Review struct {
	ID        int64
	ProductID int64
	Author    string
	Rating    int
	Text      string
	Date      time.Time
}

// CatalogSnapshot is the full content of a catalog source read at one point in time.
type CatalogSnapshot struct {
	Products []Product
	Reviews  []Review
}

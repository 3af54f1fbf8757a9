package catalog

import (
	"strings"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the products whose name or category contains term, ignoring case.
// Relative order is kept. Only the empty term matches everything; whitespace is
// part of the term.
func Filter(products []domain.Product, term string) []domain.Product {
	if term == "" {
		return products
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(term)

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(lower.String(p.Name), needle) || strings.Contains(lower.String(p.Category), needle) {
			result = append(result, p)
		}
	}

	return result
}

// Package session owns the state of one storefront visitor: the search term and
// the cart over a read-only catalog. Events must be applied in dispatch order;
// a Session is not safe for concurrent use.
package session

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-demo/internal/cart"
	"github.com/nikolayk812/storefront-demo/internal/catalog"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"go.uber.org/zap"
)

type Log interface {
	Debug(string, ...zap.Field)
	Warn(string, ...zap.Field)
}

type Session struct {
	id           uuid.UUID
	catalog      *catalog.Catalog
	relatedLimit int

	searchTerm string
	cart       domain.Cart

	log Log
}

// New starts a session. log is expected to already carry the session ID.
func New(id uuid.UUID, c *catalog.Catalog, relatedLimit int, log Log) (*Session, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("session id is empty")
	}
	if c == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if log == nil {
		return nil, fmt.Errorf("log is nil")
	}

	return &Session{
		id:           id,
		catalog:      c,
		relatedLimit: relatedLimit,
		cart:         cart.New(c.Currency()),
		log:          log,
	}, nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) SetSearchTerm(term string) {
	s.searchTerm = term
	s.log.Debug("search term set", zap.String("term", term))
}

func (s *Session) SearchTerm() string {
	return s.searchTerm
}

// Products is the catalog filtered by the current search term.
func (s *Session) Products() []domain.Product {
	return s.catalog.Filter(s.searchTerm)
}

func (s *Session) Detail(productID int64) (catalog.Detail, error) {
	return s.catalog.Detail(productID, s.relatedLimit)
}

func (s *Session) AddToCart(productID int64) error {
	p, err := s.catalog.FindByID(productID)
	if err != nil {
		return err
	}

	updated, err := cart.AddItem(s.cart, p)
	if err != nil {
		return fmt.Errorf("cart.AddItem: %w", err)
	}
	s.cart = updated

	s.log.Debug("added to cart",
		zap.Int64("product", productID),
		zap.Int("items", cart.TotalItems(s.cart)))

	return nil
}

func (s *Session) RemoveFromCart(productID int64) {
	s.cart = cart.RemoveItem(s.cart, productID)
	s.log.Debug("removed from cart", zap.Int64("product", productID))
}

// UpdateQuantity ignores invalid quantities after logging them.
func (s *Session) UpdateQuantity(productID int64, qty int) {
	updated, err := cart.SetQuantity(s.cart, productID, qty)
	if err != nil {
		s.log.Warn("quantity update ignored", zap.Error(err))
		return
	}
	s.cart = updated

	s.log.Debug("quantity updated",
		zap.Int64("product", productID),
		zap.Int("quantity", qty))
}

// Cart returns a copy of the current cart.
func (s *Session) Cart() domain.Cart {
	c := s.cart
	c.Items = slices.Clone(s.cart.Items)
	return c
}

func (s *Session) TotalItems() int {
	return cart.TotalItems(s.cart)
}

func (s *Session) TotalPrice() domain.Money {
	return cart.TotalPrice(s.cart)
}

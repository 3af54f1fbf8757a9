package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

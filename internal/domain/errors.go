package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart indicates a checkout was attempted with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUnknownProduct indicates a checkout referenced an id the catalog does not hold.
	ErrUnknownProduct = errors.New("product not found")
	// ErrInvalidInput indicates a request that fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

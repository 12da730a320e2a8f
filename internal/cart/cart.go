// Package cart implements the client-side shopping cart: an ordered set of
// product lines, unique per product, with quantities clamped to what the
// catalog says is available. Every mutation is written through to the
// configured Store.
package cart

import (
	"io"
	"log"

	"garage-sale/internal/domain"
)

// Line pairs a product snapshot with an ordered quantity. The JSON shape
// matches the persisted format of earlier storefront versions, so saved
// carts remain readable across reimplementations.
type Line struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart holds the in-progress order. Lines keep insertion order and never
// hold a quantity outside [1, available_count]; a line that would reach 0
// is removed instead.
type Cart struct {
	store  Store
	logger *log.Logger
	lines  []Line
}

// New restores a cart from the store. Absent or malformed persisted state
// degrades to an empty cart rather than failing.
func New(store Store, logger *log.Logger) *Cart {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := &Cart{store: store, logger: logger}

	lines, err := store.Load()
	if err != nil {
		logger.Printf("cart: discarding unreadable saved cart: %v", err)
		return c
	}
	for _, line := range lines {
		if line.Product.ID == 0 || line.Product.AvailableCount < 1 || line.Quantity < 1 {
			logger.Printf("cart: dropping invalid saved line product_id=%d quantity=%d", line.Product.ID, line.Quantity)
			continue
		}
		if line.Quantity > line.Product.AvailableCount {
			line.Quantity = line.Product.AvailableCount
		}
		if c.find(line.Product.ID) != -1 {
			continue
		}
		c.lines = append(c.lines, line)
	}
	return c
}

// Add puts one unit of the product in the cart. An existing line grows by
// one, capped at the product's available count; a missing line starts at 1.
func (c *Cart) Add(p domain.Product) error {
	if p.AvailableCount < 1 {
		return nil
	}
	if i := c.find(p.ID); i != -1 {
		if c.lines[i].Quantity < p.AvailableCount {
			c.lines[i].Quantity++
		}
		c.lines[i].Product = p
	} else {
		c.lines = append(c.lines, Line{Product: p, Quantity: 1})
	}
	return c.persist()
}

// Remove deletes the line for the product id. Removing an absent id is a
// no-op.
func (c *Cart) Remove(productID int64) error {
	i := c.find(productID)
	if i == -1 {
		return nil
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return c.persist()
}

// Adjust applies a signed delta to the line's quantity, clamped to
// [1, available_count]. Absent ids are a no-op.
func (c *Cart) Adjust(productID int64, delta int) error {
	i := c.find(productID)
	if i == -1 {
		return nil
	}
	q := c.lines[i].Quantity + delta
	if q < 1 {
		q = 1
	}
	if max := c.lines[i].Product.AvailableCount; q > max {
		q = max
	}
	c.lines[i].Quantity = q
	return c.persist()
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart holds no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) find(productID int64) int {
	for i, line := range c.lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) persist() error {
	if err := c.store.Save(c.Lines()); err != nil {
		c.logger.Printf("cart: save failed: %v", err)
		return err
	}
	return nil
}

// Package checkout maps a cart's (product id, quantity) pairs onto a priced
// payment session. Prices always come from the catalog store, never from
// the client.
package checkout

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"strings"

	"garage-sale/internal/domain"
	"garage-sale/internal/payment"
	productrepo "garage-sale/internal/repository/product"
)

// Item is one requested cart line: product identity plus quantity, no price.
type Item struct {
	ProductID int64
	Quantity  int
}

type Service struct {
	products productrepo.Repository
	sessions payment.SessionCreator
	logger   *log.Logger
}

func New(products productrepo.Repository, sessions payment.SessionCreator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{products: products, sessions: sessions, logger: logger}
}

// Create resolves the requested items against the catalog, builds the
// priced line-item list and returns the hosted session's redirect URL.
// If any requested id is missing from the catalog the whole request fails;
// no partial session is ever created.
func (s *Service) Create(ctx context.Context, items []Item) (string, error) {
	if len(items) == 0 {
		return "", domain.ErrEmptyCart
	}

	merged, ids, err := mergeItems(items)
	if err != nil {
		return "", err
	}

	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return "", fmt.Errorf("fetch products: %w", err)
	}
	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var missing []string
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, fmt.Sprintf("%d", id))
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownProduct, strings.Join(missing, ", "))
	}

	lineItems := make([]payment.LineItem, 0, len(ids))
	for _, id := range ids {
		p := byID[id]
		lineItems = append(lineItems, payment.LineItem{
			Name:        p.Name,
			Description: p.Description,
			UnitAmount:  int64(math.Round(p.Price * 100)),
			Quantity:    int64(merged[id]),
		})
	}

	url, err := s.sessions.CreateSession(ctx, lineItems)
	if err != nil {
		return "", fmt.Errorf("create payment session: %w", err)
	}
	s.logger.Printf("checkout: session created lines=%d", len(lineItems))
	return url, nil
}

// mergeItems validates quantities and collapses duplicate product ids,
// keeping first-seen order.
func mergeItems(items []Item) (map[int64]int, []int64, error) {
	merged := make(map[int64]int, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if item.ProductID <= 0 {
			return nil, nil, fmt.Errorf("%w: product id must be positive", domain.ErrInvalidInput)
		}
		if item.Quantity < 1 {
			return nil, nil, fmt.Errorf("%w: quantity must be at least 1 for product %d", domain.ErrInvalidInput, item.ProductID)
		}
		if _, seen := merged[item.ProductID]; !seen {
			ids = append(ids, item.ProductID)
		}
		merged[item.ProductID] += item.Quantity
	}
	return merged, ids, nil
}

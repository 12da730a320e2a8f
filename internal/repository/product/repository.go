package product

import (
	"context"

	"garage-sale/internal/domain"
)

// Repository is the catalog store contract: the storefront reads it, the
// upload endpoint is its only writer.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

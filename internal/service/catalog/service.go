package catalog

import (
	"context"
	"fmt"
	"strings"

	"garage-sale/internal/domain"
	productrepo "garage-sale/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// Insert validates and stores a new catalog row.
func (s *Service) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if p.AvailableCount < 0 {
		return nil, fmt.Errorf("%w: available_count must not be negative", domain.ErrInvalidInput)
	}
	return s.repo.Insert(ctx, p)
}

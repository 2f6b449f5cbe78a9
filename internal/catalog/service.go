package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports a product id with no catalog entry.
var ErrNotFound = errors.New("product not found")

// Service wraps the repository with the lookup semantics the handlers expose.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f Filter) ([]Product, error) {
	return s.repo.FindAll(ctx, f)
}

func (s *Service) Featured(ctx context.Context) ([]Product, error) {
	featured := true
	return s.repo.FindAll(ctx, Filter{Featured: &featured})
}

// Get returns ErrNotFound (wrapped with the id) on a lookup miss.
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("ID %s ile ürün bulunamadı: %w", id, ErrNotFound)
	}
	return p, nil
}

// Search falls back to the full listing for a blank query.
func (s *Service) Search(ctx context.Context, query string) ([]Product, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.FindAll(ctx, Filter{})
	}
	return s.repo.Search(ctx, query)
}

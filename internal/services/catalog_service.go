package services

import (
	"context"

	"shop-service/internal/domain"
	"shop-service/internal/repository"
)

// CatalogService serves the public, read-only catalog.
type CatalogService struct {
	store repository.Store
}

func NewCatalogService(store repository.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	out, err := s.store.Catalog().ListCategories(ctx)
	if err != nil {
		return nil, domain.Internal("failed to load categories", err)
	}
	if out == nil {
		out = []domain.Category{}
	}
	return out, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	out, err := s.store.Catalog().ListProducts(ctx, filter)
	if err != nil {
		return nil, domain.Internal("failed to load products", err)
	}
	if out == nil {
		out = []domain.Product{}
	}
	return out, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	p, err := s.store.Catalog().FindProductByID(ctx, id)
	if err != nil {
		return nil, domain.Internal("failed to load product", err)
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) ListReviews(ctx context.Context, productID uint64) ([]domain.ReviewView, error) {
	out, err := s.store.Catalog().ListReviews(ctx, productID)
	if err != nil {
		return nil, domain.Internal("failed to load reviews", err)
	}
	if out == nil {
		out = []domain.ReviewView{}
	}
	return out, nil
}

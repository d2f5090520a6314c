package services

import (
	"context"

	"shop-service/internal/domain"
	"shop-service/internal/repository"
)

type WishlistService struct {
	store repository.Store
}

func NewWishlistService(store repository.Store) *WishlistService {
	return &WishlistService{store: store}
}

func (s *WishlistService) List(ctx context.Context, userID uint64) ([]domain.Product, error) {
	out, err := s.store.Wishlist().ListProducts(ctx, userID)
	if err != nil {
		return nil, domain.Internal("failed to load wishlist", err)
	}
	if out == nil {
		out = []domain.Product{}
	}
	return out, nil
}

// Add is idempotent.
func (s *WishlistService) Add(ctx context.Context, userID, productID uint64) error {
	if productID == 0 {
		return ErrProductIDRequired
	}

	product, err := s.store.Catalog().FindProductByID(ctx, productID)
	if err != nil {
		return domain.Internal("failed to add to wishlist", err)
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := s.store.Wishlist().Add(ctx, userID, productID); err != nil {
		return domain.Internal("failed to add to wishlist", err)
	}
	return nil
}

// Remove succeeds whether or not the product was in the wishlist.
func (s *WishlistService) Remove(ctx context.Context, userID, productID uint64) error {
	if err := s.store.Wishlist().Remove(ctx, userID, productID); err != nil {
		return domain.Internal("failed to remove from wishlist", err)
	}
	return nil
}

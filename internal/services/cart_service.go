package services

import (
	"context"
	"log"
	"math"

	"shop-service/internal/domain"
	"shop-service/internal/repository"
)

// MaxCartQuantity bounds a cart line so it fits the INT quantity column.
const MaxCartQuantity = math.MaxInt32

type CartService struct {
	store repository.Store
}

func NewCartService(store repository.Store) *CartService {
	return &CartService{store: store}
}

// AddItemInput.Quantity is optional and defaults to 1.
type AddItemInput struct {
	ProductID uint64
	Quantity  *int
}

func (s *CartService) GetCart(ctx context.Context, userID uint64) ([]domain.CartLine, error) {
	cart, err := s.store.Carts().FindByUserID(ctx, userID)
	if err != nil {
		return nil, domain.Internal("failed to load cart", err)
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	lines, err := s.store.Carts().ListLines(ctx, cart.ID)
	if err != nil {
		return nil, domain.Internal("failed to load cart", err)
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return lines, nil
}

// AddItem merges into the existing line for the product, or inserts one.
// Stock is not checked until checkout.
func (s *CartService) AddItem(ctx context.Context, userID uint64, in AddItemInput) (*domain.CartItem, error) {
	if in.ProductID == 0 {
		return nil, ErrProductIDRequired
	}
	qty := 1
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}
	if qty > MaxCartQuantity {
		return nil, ErrQuantityTooLarge
	}

	var item *domain.CartItem
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		// the cart row lock serializes concurrent adds to the same cart
		cart, err := tx.Carts().FindByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}

		product, err := tx.Catalog().FindProductByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		existing, err := tx.Carts().FindItemByProduct(ctx, cart.ID, in.ProductID)
		if err != nil {
			return err
		}
		if existing != nil {
			if qty > MaxCartQuantity-existing.Quantity {
				return ErrQuantityTooLarge
			}
			existing.Quantity += qty
			item = existing
		} else {
			item = &domain.CartItem{CartID: cart.ID, ProductID: in.ProductID, Quantity: qty}
		}
		return tx.Carts().SaveItem(ctx, item)
	})
	if err != nil {
		if !domain.IsDomain(err) {
			log.Printf("AddItem user %d product %d failed: %v", userID, in.ProductID, err)
		}
		return nil, domain.AsInternal(err, "failed to add item to cart")
	}
	return item, nil
}

// RemoveItem deletes a line from the caller's own cart. Items of other carts
// are reported as not found.
func (s *CartService) RemoveItem(ctx context.Context, userID, cartItemID uint64) error {
	cart, err := s.store.Carts().FindByUserID(ctx, userID)
	if err != nil {
		return domain.Internal("failed to remove item", err)
	}
	if cart == nil {
		return ErrCartNotFound
	}

	deleted, err := s.store.Carts().DeleteItem(ctx, cart.ID, cartItemID)
	if err != nil {
		return domain.Internal("failed to remove item", err)
	}
	if !deleted {
		return ErrCartItemNotFound
	}
	return nil
}

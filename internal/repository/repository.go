package repository

import (
	"context"
	"errors"

	"shop-service/internal/domain"
)

// ErrDuplicateKey is returned when an insert violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

// Lookups return (nil, nil) when the row does not exist.

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id uint64) error
}

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	FindProductByID(ctx context.Context, id uint64) (*domain.Product, error)
	// FindProductForUpdate row-locks the product until the transaction ends.
	FindProductForUpdate(ctx context.Context, id uint64) (*domain.Product, error)
	// DecrementStock reports false when stock was lower than qty.
	DecrementStock(ctx context.Context, id uint64, qty int) (bool, error)
	ListReviews(ctx context.Context, productID uint64) ([]domain.ReviewView, error)
	DeleteReviewsByUser(ctx context.Context, userID uint64) error
}

type CartRepository interface {
	Create(ctx context.Context, cart *domain.Cart) error
	FindByUserID(ctx context.Context, userID uint64) (*domain.Cart, error)
	FindByUserIDForUpdate(ctx context.Context, userID uint64) (*domain.Cart, error)
	ListLines(ctx context.Context, cartID uint64) ([]domain.CartLine, error)
	ListItems(ctx context.Context, cartID uint64) ([]domain.CartItem, error)
	FindItemByProduct(ctx context.Context, cartID, productID uint64) (*domain.CartItem, error)
	SaveItem(ctx context.Context, item *domain.CartItem) error
	// DeleteItem reports false when no item with that id belongs to the cart.
	DeleteItem(ctx context.Context, cartID, itemID uint64) (bool, error)
	ClearItems(ctx context.Context, cartID uint64) error
	Delete(ctx context.Context, cartID uint64) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	CreateItems(ctx context.Context, items []domain.OrderItem) error
	CreatePayment(ctx context.Context, p *domain.Payment) error
	FindByID(ctx context.Context, userID, id uint64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID uint64) ([]domain.Order, error)
}

type WishlistRepository interface {
	ListProducts(ctx context.Context, userID uint64) ([]domain.Product, error)
	Add(ctx context.Context, userID, productID uint64) error
	Remove(ctx context.Context, userID, productID uint64) error
	DeleteByUser(ctx context.Context, userID uint64) error
}

// Store is the data-store handle services receive. Inside WithinTx the
// handle passed to fn is bound to one transaction; returning an error
// from fn rolls everything back.
type Store interface {
	Users() UserRepository
	Catalog() CatalogRepository
	Carts() CartRepository
	Orders() OrderRepository
	Wishlist() WishlistRepository
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}

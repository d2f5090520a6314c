package mysql

import (
	"context"

	"gorm.io/gorm"

	"shop-service/internal/repository"
)

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) repository.Store {
	return &store{db: db}
}

func (s *store) Users() repository.UserRepository        { return &userRepo{db: s.db} }
func (s *store) Catalog() repository.CatalogRepository   { return &catalogRepo{db: s.db} }
func (s *store) Carts() repository.CartRepository        { return &cartRepo{db: s.db} }
func (s *store) Orders() repository.OrderRepository      { return &orderRepo{db: s.db} }
func (s *store) Wishlist() repository.WishlistRepository { return &wishlistRepo{db: s.db} }

func (s *store) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&store{db: tx})
	})
}

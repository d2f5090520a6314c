package mysql

import (
	"context"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop-service/internal/domain"
)

type wishlistRepo struct {
	db *gorm.DB
}

func (r *wishlistRepo) ListProducts(ctx context.Context, userID uint64) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("JOIN wishlist_items ON wishlist_items.product_id = products.id").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("wishlist_items.user_id = ?", userID).
		Order("wishlist_items.created_at DESC, wishlist_items.id DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("wishlist ListProducts error: %v", err)
		return nil, err
	}
	return out, nil
}

// Add is idempotent: a pair already present is left untouched.
func (r *wishlistRepo) Add(ctx context.Context, userID, productID uint64) error {
	item := domain.WishlistItem{UserID: userID, ProductID: productID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&item).Error
}

func (r *wishlistRepo) Remove(ctx context.Context, userID, productID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.WishlistItem{}).Error
}

func (r *wishlistRepo) DeleteByUser(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.WishlistItem{}).Error
}

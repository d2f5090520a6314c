package mysql

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop-service/internal/domain"
)

type cartRepo struct {
	db *gorm.DB
}

func (r *cartRepo) Create(ctx context.Context, cart *domain.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepo) FindByUserID(ctx context.Context, userID uint64) (*domain.Cart, error) {
	return r.findByUser(r.db.WithContext(ctx), userID)
}

func (r *cartRepo) FindByUserIDForUpdate(ctx context.Context, userID uint64) (*domain.Cart, error) {
	return r.findByUser(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (r *cartRepo) findByUser(q *gorm.DB, userID uint64) (*domain.Cart, error) {
	var c domain.Cart
	if err := q.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("cart findByUser error: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *cartRepo) ListLines(ctx context.Context, cartID uint64) ([]domain.CartLine, error) {
	var out []domain.CartLine
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id AS cart_item_id, cart_items.product_id, cart_items.quantity, products.name, products.price, products.img_url").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.cart_id = ?", cartID).
		Order("cart_items.id").
		Scan(&out).Error
	if err != nil {
		log.Printf("ListLines error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *cartRepo) ListItems(ctx context.Context, cartID uint64) ([]domain.CartItem, error) {
	var out []domain.CartItem
	if err := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cartRepo) FindItemByProduct(ctx context.Context, cartID, productID uint64) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// SaveItem inserts a new item or updates an existing one by primary key.
func (r *cartRepo) SaveItem(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepo) DeleteItem(ctx context.Context, cartID, itemID uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&domain.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *cartRepo) ClearItems(ctx context.Context, cartID uint64) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&domain.CartItem{}).Error
}

func (r *cartRepo) Delete(ctx context.Context, cartID uint64) error {
	return r.db.WithContext(ctx).Delete(&domain.Cart{}, cartID).Error
}

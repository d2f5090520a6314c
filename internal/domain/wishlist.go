package domain

import "time"

type WishlistItem struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID uint64    `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

package domain

import "github.com/shopspring/decimal"

type Cart struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	UserID uint64 `gorm:"not null;uniqueIndex"`
}

type CartItem struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	CartID    uint64 `gorm:"not null;index"`
	ProductID uint64 `gorm:"not null;index"`
	Quantity  int    `gorm:"not null;default:1"`
}

// CartLine is a cart item enriched with the product fields the client shows.
type CartLine struct {
	CartItemID uint64          `json:"CartItemID"`
	ProductID  uint64          `json:"ProductID"`
	Quantity   int             `json:"Quantity"`
	Name       string          `json:"Name"`
	Price      decimal.Decimal `json:"Price"`
	ImgURL     string          `json:"img_url"`
}

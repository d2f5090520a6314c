package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   uint64 `json:"CategoryID" gorm:"primaryKey;autoIncrement"`
	Name string `json:"Name" gorm:"size:255;not null;uniqueIndex"`
}

type Product struct {
	ID          uint64          `json:"ProductID" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"Name" gorm:"size:255;not null"`
	Description string          `json:"Description" gorm:"type:text"`
	Price       decimal.Decimal `json:"Price" gorm:"type:decimal(10,2);not null"`
	Stock       int             `json:"Stock" gorm:"not null;default:0"`
	CategoryID  *uint64         `json:"CategoryID" gorm:"index"`
	ImgURL      string          `json:"img_url" gorm:"column:img_url;size:255"`

	// Filled by a join on categories, never written.
	CategoryName *string `json:"CategoryName" gorm:"->;-:migration"`
}

// ProductFilter narrows a product listing. Zero values mean no filter.
type ProductFilter struct {
	CategoryID uint64
	Search     string
}

type Review struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ProductID uint64    `gorm:"not null;index"`
	UserID    uint64    `gorm:"not null;index"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// ReviewView is a review annotated with the reviewer's display name.
type ReviewView struct {
	ReviewID uint64    `json:"ReviewID"`
	Rating   int       `json:"Rating"`
	Comment  string    `json:"Comment"`
	Date     time.Time `json:"Date"`
	UserName string    `json:"UserName"`
}

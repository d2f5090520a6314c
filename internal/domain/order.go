package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusCancelled OrderStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

type Order struct {
	ID          uint64          `json:"OrderID" gorm:"primaryKey;autoIncrement"`
	UserID      uint64          `json:"UserID" gorm:"not null;index"`
	OrderDate   time.Time       `json:"OrderDate" gorm:"autoCreateTime"`
	TotalAmount decimal.Decimal `json:"TotalAmount" gorm:"type:decimal(10,2);not null"`
	Status      OrderStatus     `json:"Status" gorm:"type:varchar(50);not null;default:'Pending'"`

	Items   []OrderItem `json:"Items,omitempty" gorm:"foreignKey:OrderID"`
	Payment *Payment    `json:"Payment,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem.Price is the unit price at purchase time.
type OrderItem struct {
	ID        uint64          `json:"OrderItemID" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64          `json:"-" gorm:"not null;index"`
	ProductID uint64          `json:"ProductID" gorm:"index"`
	Quantity  int             `json:"Quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"Price" gorm:"type:decimal(10,2);not null"`
}

type Payment struct {
	ID          uint64          `json:"PaymentID" gorm:"primaryKey;autoIncrement"`
	OrderID     uint64          `json:"-" gorm:"not null;uniqueIndex"`
	PaymentDate time.Time       `json:"PaymentDate" gorm:"autoCreateTime"`
	Amount      decimal.Decimal `json:"Amount" gorm:"type:decimal(10,2);not null"`
	Method      string          `json:"PaymentMethod" gorm:"column:payment_method;size:100"`
	Status      PaymentStatus   `json:"PaymentStatus" gorm:"column:payment_status;type:varchar(50);not null"`
	Reference   string          `json:"Reference" gorm:"size:64"`
}

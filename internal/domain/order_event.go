package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const EventOrderPlaced = "order.placed"

type OrderPlacedEvent struct {
	OrderID     uint64          `json:"orderId"`
	UserID      uint64          `json:"userId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	ItemCount   int             `json:"itemCount"`
	PlacedAt    time.Time       `json:"placedAt"`
}

func NewOrderPlacedEvent(o *Order) OrderPlacedEvent {
	return OrderPlacedEvent{
		OrderID:     o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		ItemCount:   len(o.Items),
		PlacedAt:    o.OrderDate,
	}
}

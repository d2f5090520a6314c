package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shop-service/internal/domain"
)

type PaymentResult struct {
	Method    string
	Status    domain.PaymentStatus
	Reference string
}

// PaymentProcessor charges an order's total during checkout.
type PaymentProcessor interface {
	Charge(ctx context.Context, orderID uint64, amount decimal.Decimal) (*PaymentResult, error)
}

const MockCardMethod = "Mock Credit Card"

// MockCardProcessor stands in for a payment gateway: every charge completes
// immediately and no external call is made.
type MockCardProcessor struct{}

func NewMockCardProcessor() *MockCardProcessor {
	return &MockCardProcessor{}
}

func (MockCardProcessor) Charge(ctx context.Context, orderID uint64, amount decimal.Decimal) (*PaymentResult, error) {
	return &PaymentResult{
		Method:    MockCardMethod,
		Status:    domain.PaymentCompleted,
		Reference: "MOCK-" + uuid.NewString(),
	}, nil
}

var _ PaymentProcessor = (*MockCardProcessor)(nil)

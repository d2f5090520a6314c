package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/shopspring/decimal"

	"shop-service/internal/domain"
	rabbit "shop-service/internal/infra/rabbitmq"
	"shop-service/internal/repository"
)

type OrderService struct {
	store     repository.Store
	payments  PaymentProcessor
	publisher rabbit.PublisherInterface
}

func NewOrderService(store repository.Store, payments PaymentProcessor, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		store:     store,
		payments:  payments,
		publisher: pub,
	}
}

// PlaceOrder converts the caller's cart into an order in one transaction:
// stock check and decrement, order and items with snapshot prices, payment,
// and cart clearing. Any failure leaves every table untouched.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint64) (*domain.Order, error) {
	var order *domain.Order

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		cart, err := tx.Carts().FindByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}

		items, err := tx.Carts().ListItems(ctx, cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// products are locked in id order so concurrent checkouts cannot deadlock
		sort.Slice(items, func(i, j int) bool {
			if items[i].ProductID != items[j].ProductID {
				return items[i].ProductID < items[j].ProductID
			}
			return items[i].ID < items[j].ID
		})

		total := decimal.Zero
		orderItems := make([]domain.OrderItem, 0, len(items))
		for _, item := range items {
			if item.Quantity < 1 {
				return domain.Validation(fmt.Sprintf("invalid quantity for cart item %d", item.ID))
			}

			product, err := tx.Catalog().FindProductForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return ErrProductNotFound
			}
			if product.Stock < item.Quantity {
				return domain.InsufficientStock(product.Name)
			}

			ok, err := tx.Catalog().DecrementStock(ctx, product.ID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.InsufficientStock(product.Name)
			}

			total = total.Add(domain.LineTotal(product.Price, item.Quantity))
			orderItems = append(orderItems, domain.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}

		o := &domain.Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      domain.StatusPending,
		}
		if err := tx.Orders().Create(ctx, o); err != nil {
			return err
		}

		for i := range orderItems {
			orderItems[i].OrderID = o.ID
		}
		if err := tx.Orders().CreateItems(ctx, orderItems); err != nil {
			return err
		}

		result, err := s.payments.Charge(ctx, o.ID, total)
		if err != nil {
			return fmt.Errorf("charge order %d: %w", o.ID, err)
		}
		if result.Status != domain.PaymentCompleted {
			return errors.New("payment was not completed")
		}

		payment := &domain.Payment{
			OrderID:   o.ID,
			Amount:    total,
			Method:    result.Method,
			Status:    result.Status,
			Reference: result.Reference,
		}
		if err := tx.Orders().CreatePayment(ctx, payment); err != nil {
			return err
		}

		if err := tx.Carts().ClearItems(ctx, cart.ID); err != nil {
			return err
		}

		o.Items = orderItems
		o.Payment = payment
		order = o
		return nil
	})
	if err != nil {
		if !domain.IsDomain(err) {
			log.Printf("PlaceOrder user %d failed: %v", userID, err)
		}
		return nil, domain.AsInternal(err, "order placement failed")
	}

	log.Printf("Order %d placed by user %d, total %s", order.ID, userID, order.TotalAmount.StringFixed(2))
	s.publishOrderPlacedEvent(context.WithoutCancel(ctx), order)

	return order, nil
}

// publishOrderPlacedEvent runs after commit; a failure is only logged.
func (s *OrderService) publishOrderPlacedEvent(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}

	evt := domain.NewOrderPlacedEvent(order)
	if err := s.publisher.Publish(ctx, domain.EventOrderPlaced, evt); err != nil {
		log.Printf("Failed to publish %s event for order %d: %v", domain.EventOrderPlaced, order.ID, err)
	}
}

func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uint64) (*domain.Order, error) {
	o, err := s.store.Orders().FindByID(ctx, userID, orderID)
	if err != nil {
		return nil, domain.Internal("failed to load order", err)
	}

	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint64) ([]domain.Order, error) {
	o, err := s.store.Orders().ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.Internal("failed to load orders", err)
	}

	if o == nil {
		o = []domain.Order{}
	}
	return o, nil
}

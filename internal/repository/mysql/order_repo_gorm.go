package mysql

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop-service/internal/domain"
)

type orderRepo struct {
	db *gorm.DB
}

// Create inserts the order row only; items and payment are written
// explicitly by the caller inside the same transaction.
func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(order)
	if result.Error != nil {
		log.Printf("Database save error: %v", result.Error)
		return result.Error
	}

	if order.ID == 0 {
		log.Printf("WARNING: Order saved but ID is still 0. Rows affected: %d", result.RowsAffected)
		return errors.New("failed to assign order ID")
	}
	return nil
}

func (r *orderRepo) CreateItems(ctx context.Context, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&items, 100).Error; err != nil {
		log.Printf("Batch save error: %v", err)
		return err
	}

	for _, item := range items {
		if item.ID == 0 {
			return errors.New("batch insert failed to assign IDs")
		}
	}
	return nil
}

func (r *orderRepo) CreatePayment(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *orderRepo) FindByID(ctx context.Context, userID, id uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payment").
		Where("id = ? AND user_id = ?", id, userID).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("order_date DESC, id DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("ListByUser error: %v", err)
		return nil, err
	}
	return out, nil
}

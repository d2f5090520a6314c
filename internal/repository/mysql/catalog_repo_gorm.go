package mysql

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop-service/internal/domain"
)

type catalogRepo struct {
	db *gorm.DB
}

// likeEscaper escapes LIKE wildcards with '!', which both MySQL and SQLite
// accept as an ESCAPE character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func (r *catalogRepo) productQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = products.category_id")
}

func (r *catalogRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		log.Printf("ListCategories error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	q := r.productQuery(ctx)
	if filter.CategoryID != 0 {
		q = q.Where("products.category_id = ?", filter.CategoryID)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		q = q.Where("LOWER(products.name) LIKE ? ESCAPE '!'", pattern)
	}

	var out []domain.Product
	if err := q.Order("products.id").Find(&out).Error; err != nil {
		log.Printf("ListProducts error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) FindProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.productQuery(ctx).Where("products.id = ?", id).Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindProductByID error: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepo) FindProductForUpdate(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepo) DecrementStock(ctx context.Context, id uint64, qty int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *catalogRepo) ListReviews(ctx context.Context, productID uint64) ([]domain.ReviewView, error) {
	var out []domain.ReviewView
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.id AS review_id, reviews.rating, reviews.comment, reviews.created_at AS date, users.name AS user_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at DESC, reviews.id DESC").
		Scan(&out).Error
	if err != nil {
		log.Printf("ListReviews error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) DeleteReviewsByUser(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Review{}).Error
}

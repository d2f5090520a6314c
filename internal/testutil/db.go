// Package testutil provides a real gorm database for tests that exercise
// transactions end to end.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shop-service/internal/auth"
	"shop-service/internal/domain"
	mmysql "shop-service/internal/infra/mysql"
)

// NewDB opens a private in-memory SQLite database with the production schema.
// The pool holds a single connection, so concurrent transactions serialize.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := mmysql.GormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	db, err := gorm.Open(sqlite.Open(":memory:"), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, mmysql.Migrate(db))
	return db
}

// CreateUser inserts a user together with its cart and returns both.
func CreateUser(t testing.TB, db *gorm.DB, name, email, password string) (*domain.User, *domain.Cart) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	u := &domain.User{Name: name, Email: email, PasswordHash: hash, Role: domain.RoleCustomer}
	require.NoError(t, db.Create(u).Error)

	c := &domain.Cart{UserID: u.ID}
	require.NoError(t, db.Create(c).Error)
	return u, c
}

func CreateCategory(t testing.TB, db *gorm.DB, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

// CreateProduct inserts a product; price is parsed as an exact decimal.
func CreateProduct(t testing.TB, db *gorm.DB, name, price string, stock int, category *domain.Category) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
	if category != nil {
		p.CategoryID = &category.ID
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func AddCartItem(t testing.TB, db *gorm.DB, cart *domain.Cart, product *domain.Product, qty int) *domain.CartItem {
	t.Helper()
	item := &domain.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: qty}
	require.NoError(t, db.Create(item).Error)
	return item
}

func ProductStock(t testing.TB, db *gorm.DB, productID uint64) int {
	t.Helper()
	var p domain.Product
	require.NoError(t, db.First(&p, productID).Error)
	return p.Stock
}

func Count(t testing.TB, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

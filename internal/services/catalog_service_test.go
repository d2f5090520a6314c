package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shop-service/internal/domain"
	"shop-service/internal/mocks"
	"shop-service/internal/services"
	"shop-service/internal/testutil"
)

func TestCatalogService_ListProducts(t *testing.T) {
	db, store := newTestStore(t)
	ctx := context.Background()

	stationery := testutil.CreateCategory(t, db, "Stationery")
	plushies := testutil.CreateCategory(t, db, "Plushies")
	pen := testutil.CreateProduct(t, db, "Kawaii Cat Pen", "79", 10, stationery)
	bunny := testutil.CreateProduct(t, db, "Pastel Bunny Plush", "349", 5, plushies)
	tote := testutil.CreateProduct(t, db, "100% Cotton Tote", "260", 5, nil)

	service := services.NewCatalogService(store)

	tests := []struct {
		name     string
		filter   domain.ProductFilter
		expected []uint64
	}{
		{
			name:     "no filter returns everything",
			filter:   domain.ProductFilter{},
			expected: []uint64{pen.ID, bunny.ID, tote.ID},
		},
		{
			name:     "category filter",
			filter:   domain.ProductFilter{CategoryID: stationery.ID},
			expected: []uint64{pen.ID},
		},
		{
			name:     "case insensitive partial search",
			filter:   domain.ProductFilter{Search: "BUN"},
			expected: []uint64{bunny.ID},
		},
		{
			name:     "wildcards are matched literally",
			filter:   domain.ProductFilter{Search: "%"},
			expected: []uint64{tote.ID},
		},
		{
			name:     "category and search combine",
			filter:   domain.ProductFilter{CategoryID: stationery.ID, Search: "bunny"},
			expected: []uint64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := service.ListProducts(ctx, tt.filter)
			require.NoError(t, err)
			require.NotNil(t, products)

			ids := make([]uint64, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestCatalogService_GetProduct(t *testing.T) {
	db, store := newTestStore(t)
	ctx := context.Background()

	stationery := testutil.CreateCategory(t, db, "Stationery")
	pen := testutil.CreateProduct(t, db, "Kawaii Cat Pen", "79", 10, stationery)
	tote := testutil.CreateProduct(t, db, "Tote", "260", 5, nil)

	service := services.NewCatalogService(store)

	got, err := service.GetProduct(ctx, pen.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kawaii Cat Pen", got.Name)
	require.NotNil(t, got.CategoryName)
	assert.Equal(t, "Stationery", *got.CategoryName)

	got, err = service.GetProduct(ctx, tote.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryName)

	_, err = service.GetProduct(ctx, 9999)
	assert.Equal(t, services.ErrProductNotFound, err)
}

func TestCatalogService_ListCategories(t *testing.T) {
	db, store := newTestStore(t)
	service := services.NewCatalogService(store)

	empty, err := service.ListCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	testutil.CreateCategory(t, db, "Stationery")
	testutil.CreateCategory(t, db, "Plushies")

	categories, err := service.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Stationery", categories[0].Name)
	assert.Equal(t, "Plushies", categories[1].Name)
}

func TestCatalogService_ListReviews(t *testing.T) {
	db, store := newTestStore(t)

	pen := testutil.CreateProduct(t, db, "Kawaii Cat Pen", "79", 10, nil)
	other := testutil.CreateProduct(t, db, "Tote", "260", 5, nil)
	user, _ := testutil.CreateUser(t, db, "Mina", "mina@example.com", testPassword)

	require.NoError(t, db.Create(&domain.Review{UserID: user.ID, ProductID: pen.ID, Rating: 5, Comment: "so cute"}).Error)
	require.NoError(t, db.Create(&domain.Review{UserID: user.ID, ProductID: other.ID, Rating: 2}).Error)

	reviews, err := services.NewCatalogService(store).ListReviews(context.Background(), pen.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Mina", reviews[0].UserName)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "so cute", reviews[0].Comment)
}

func TestCatalogService_RepositoryFailure(t *testing.T) {
	store := mocks.NewMockStore()
	store.CatalogRepo.On("ListProducts", mock.Anything, domain.ProductFilter{}).Return(nil, errors.New("database error"))

	_, err := services.NewCatalogService(store).ListProducts(context.Background(), domain.ProductFilter{})

	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.Equal(t, "failed to load products", err.Error())
	store.AssertAll(t)
}

package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-service/internal/testutil"
)

func TestCatalogRepo_DecrementStock(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewStore(db).Catalog()

	plush := testutil.CreateProduct(t, db, "Pastel Bunny Plush", "349", 3, nil)

	tests := []struct {
		name          string
		qty           int
		expectedOK    bool
		expectedStock int
	}{
		{name: "more than available", qty: 4, expectedOK: false, expectedStock: 3},
		{name: "part of the stock", qty: 2, expectedOK: true, expectedStock: 1},
		{name: "exactly the rest", qty: 1, expectedOK: true, expectedStock: 0},
		{name: "nothing left", qty: 1, expectedOK: false, expectedStock: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := repo.DecrementStock(ctx, plush.ID, tt.qty)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedStock, testutil.ProductStock(t, db, plush.ID))
		})
	}

	ok, err := repo.DecrementStock(ctx, 9999, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalogRepo_FindProductForUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewStore(db).Catalog()
	pen := testutil.CreateProduct(t, db, "Kawaii Cat Pen", "79", 10, nil)

	got, err := repo.FindProductForUpdate(context.Background(), pen.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 10, got.Stock)

	missing, err := repo.FindProductForUpdate(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

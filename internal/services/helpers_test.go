package services_test

import (
	"testing"

	"gorm.io/gorm"

	"shop-service/internal/repository"
	mysqlrepo "shop-service/internal/repository/mysql"
	"shop-service/internal/testutil"
)

const (
	testPassword = "hunter22"
	testSecret   = "test-secret"
)

func newTestStore(t *testing.T) (*gorm.DB, repository.Store) {
	t.Helper()
	db := testutil.NewDB(t)
	return db, mysqlrepo.NewStore(db)
}

func intPtr(i int) *int {
	return &i
}

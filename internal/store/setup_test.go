package store

import (
	"context"
	"testing"
	"time"

	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testClock = time.Date(2024, time.March, 9, 14, 30, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	return database.New(database.WithClock(func() time.Time { return testClock }))
}

func setupSeededDB(t *testing.T) *database.DB {
	t.Helper()
	db := setupTestDB(t)
	require.NoError(t, Seed(context.Background(), db))
	return db
}

func mustCreateUser(t *testing.T, db *database.DB, username string) *models.User {
	t.Helper()
	user, err := CreateUser(context.Background(), db, username, username+"@example.com")
	require.NoError(t, err)
	return user
}

func mustCreateProduct(t *testing.T, db *database.DB, name, price string, stock int) *models.Product {
	t.Helper()
	product, err := CreateProduct(context.Background(), db, name, decimal.RequireFromString(price), stock)
	require.NoError(t, err)
	return product
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

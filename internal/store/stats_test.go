package store

import (
	"context"
	"testing"

	"github.com/safar/go-catalog-store/internal/config"
	"github.com/safar/go-catalog-store/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedScenario(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	users, err := ListUsers(ctx, db, 1, 10)
	require.NoError(t, err)
	require.Len(t, users.Items, 3)
	assert.Equal(t, "anoop_v", users.Items[0].Username)
	assert.Equal(t, "jane.d@web.com", users.Items[1].Email)
	assert.Equal(t, "alex_smith", users.Items[2].Username)

	products, err := ListProducts(ctx, db, 1, 10)
	require.NoError(t, err)
	require.Len(t, products.Items, 4)

	want := []struct {
		name  string
		price string
		stock int
	}{
		{"Laptop Pro", "1299.99", 50},
		{"Wireless Mouse", "49.99", 150},
		{"4K Monitor", "399.00", 75},
		{"Mechanical Keyboard", "119.50", 120},
	}
	for i, w := range want {
		p := products.Items[i]
		assert.Equal(t, w.name, p.Name)
		assert.True(t, p.Price.Equal(dec(w.price)), "%s price %s", w.name, p.Price)
		assert.Equal(t, w.stock, p.Stock)
	}

	orders, err := ListOrders(ctx, db, 1, 10)
	require.NoError(t, err)
	require.Len(t, orders.Items, 2)

	first, second := orders.Items[0], orders.Items[1]
	assert.Equal(t, models.OrderStatusShipped, first.Status)
	assert.Equal(t, "anoop_v", first.User.Username)
	assert.True(t, first.TotalPrice.Equal(dec("1349.98")), "got %s", first.TotalPrice)

	assert.Equal(t, models.OrderStatusPending, second.Status)
	assert.Equal(t, "jane_doe", second.User.Username)
	assert.True(t, second.TotalPrice.Equal(dec("917.50")), "got %s", second.TotalPrice)

	pending, err := PendingOrderCount(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	sales, err := TotalSales(ctx, db)
	require.NoError(t, err)
	assert.True(t, sales.Equal(dec("1349.98")), "got %s", sales)
}

func TestStatisticsCountCancelledAsSales(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	orders, err := ListOrders(ctx, db, 1, 10)
	require.NoError(t, err)
	pendingID := orders.Items[1].ID

	_, err = UpdateOrderStatus(ctx, db, pendingID, models.OrderStatusCancelled)
	require.NoError(t, err)

	stats, err := Dashboard(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 0, stats.PendingOrders)
	assert.True(t, stats.TotalSales.Equal(dec("2267.48")), "got %s", stats.TotalSales)
}

func TestStatisticsEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	users, err := TotalUsers(ctx, db)
	require.NoError(t, err)
	products, err := TotalProducts(ctx, db)
	require.NoError(t, err)
	sales, err := TotalSales(ctx, db)
	require.NoError(t, err)

	assert.Zero(t, users)
	assert.Zero(t, products)
	assert.True(t, sales.IsZero())
}

func TestStatisticsReflectDeletes(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	u := mustCreateUser(t, db, "extra")
	n, err := TotalUsers(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, DeleteUser(ctx, db, u.ID, config.DeletePolicyPermissive))
	n, err = TotalUsers(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

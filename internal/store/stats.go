package store

import (
	"context"

	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/models"
	"github.com/shopspring/decimal"
)

type Stats struct {
	TotalUsers    int             `json:"total_users"`
	TotalProducts int             `json:"total_products"`
	TotalOrders   int             `json:"total_orders"`
	PendingOrders int             `json:"pending_orders"`
	TotalSales    decimal.Decimal `json:"total_sales"`
}

func TotalUsers(ctx context.Context, db *database.DB) (int, error) {
	var n int
	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		n = tx.Users.Len()
		return nil
	})
	return n, err
}

func TotalProducts(ctx context.Context, db *database.DB) (int, error) {
	var n int
	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		n = tx.Products.Len()
		return nil
	})
	return n, err
}

func TotalOrders(ctx context.Context, db *database.DB) (int, error) {
	var n int
	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		n = tx.Orders.Len()
		return nil
	})
	return n, err
}

func PendingOrderCount(ctx context.Context, db *database.DB) (int, error) {
	var n int
	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		n = pendingOrders(tx)
		return nil
	})
	return n, err
}

// TotalSales sums every order that is not Pending. Cancelled orders count.
func TotalSales(ctx context.Context, db *database.DB) (decimal.Decimal, error) {
	total := decimal.Zero
	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		total = totalSales(tx)
		return nil
	})
	return total, err
}

// Dashboard computes every figure under one read lock.
func Dashboard(ctx context.Context, db *database.DB) (*Stats, error) {
	var stats *Stats
	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		stats = &Stats{
			TotalUsers:    tx.Users.Len(),
			TotalProducts: tx.Products.Len(),
			TotalOrders:   tx.Orders.Len(),
			PendingOrders: pendingOrders(tx),
			TotalSales:    totalSales(tx),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func pendingOrders(tx *database.DB) int {
	n := 0
	tx.Orders.Scan(func(o *models.Order) bool {
		if o.Status == models.OrderStatusPending {
			n++
		}
		return true
	})
	return n
}

func totalSales(tx *database.DB) decimal.Decimal {
	total := decimal.Zero
	tx.Orders.Scan(func(o *models.Order) bool {
		if o.Status != models.OrderStatusPending {
			total = total.Add(o.TotalPrice)
		}
		return true
	})
	return total
}

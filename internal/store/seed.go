package store

import (
	"context"
	"fmt"

	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/models"
	"github.com/shopspring/decimal"
)

// Seed loads the sample catalog: three users, four products and two orders.
func Seed(ctx context.Context, db *database.DB) error {
	users := make([]*models.User, 0, 3)
	for _, u := range []struct{ username, email string }{
		{"anoop_v", "anoop.v@example.com"},
		{"jane_doe", "jane.d@web.com"},
		{"alex_smith", "asmith@mail.net"},
	} {
		user, err := CreateUser(ctx, db, u.username, u.email)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		users = append(users, user)
	}

	products := make([]*models.Product, 0, 4)
	for _, p := range []struct {
		name  string
		price string
		stock int
	}{
		{"Laptop Pro", "1299.99", 50},
		{"Wireless Mouse", "49.99", 150},
		{"4K Monitor", "399.00", 75},
		{"Mechanical Keyboard", "119.50", 120},
	} {
		product, err := CreateProduct(ctx, db, p.name, decimal.RequireFromString(p.price), p.stock)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.name, err)
		}
		products = append(products, product)
	}

	orders := []struct {
		user   *models.User
		status models.OrderStatus
		items  []OrderItemRequest
	}{
		{users[0], models.OrderStatusShipped, []OrderItemRequest{
			{ProductID: products[0].ID, Quantity: 1},
			{ProductID: products[1].ID, Quantity: 1},
		}},
		{users[1], models.OrderStatusPending, []OrderItemRequest{
			{ProductID: products[2].ID, Quantity: 2},
			{ProductID: products[3].ID, Quantity: 1},
		}},
	}

	for _, o := range orders {
		order, err := CreateOrder(ctx, db, CreateOrderRequest{UserID: o.user.ID, Items: o.items})
		if err != nil {
			return fmt.Errorf("seed order for %s: %w", o.user.Username, err)
		}
		if o.status != order.Status {
			if _, err := UpdateOrderStatus(ctx, db, order.ID, o.status); err != nil {
				return fmt.Errorf("seed order status %s: %w", order.ID, err)
			}
		}
	}

	return nil
}

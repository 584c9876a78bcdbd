package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// OrderItem references a product shared with the catalog. The line total is
// always evaluated against the product's current price.
type OrderItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID         string          `json:"id"`
	User       *User           `json:"user"`
	Items      []OrderItem     `json:"items"`
	Status     OrderStatus     `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// AddItem appends a line item and recomputes the order total.
func (o *Order) AddItem(product *Product, quantity int) {
	o.Items = append(o.Items, OrderItem{Product: product, Quantity: quantity})
	o.RecomputeTotal()
}

// RecomputeTotal sets TotalPrice to the sum of the current line totals.
func (o *Order) RecomputeTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	o.TotalPrice = total
}

// References reports whether any line item points at the product.
func (o *Order) References(productID string) bool {
	for _, item := range o.Items {
		if item.Product != nil && item.Product.ID == productID {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

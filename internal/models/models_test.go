package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAddItemRecomputesTotal(t *testing.T) {
	monitor := &Product{ID: "P1", Name: "4K Monitor", Price: decimal.RequireFromString("399.00"), Stock: 75}
	keyboard := &Product{ID: "P2", Name: "Mechanical Keyboard", Price: decimal.RequireFromString("119.50"), Stock: 120}

	order := &Order{ID: "O1", Status: OrderStatusPending}
	assert.True(t, order.TotalPrice.IsZero())

	order.AddItem(monitor, 2)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("798.00")), "got %s", order.TotalPrice)

	order.AddItem(keyboard, 1)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("917.50")), "got %s", order.TotalPrice)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "P1", order.Items[0].Product.ID)
}

func TestOrderRecomputeTotalUsesCurrentPrice(t *testing.T) {
	laptop := &Product{ID: "P1", Price: decimal.RequireFromString("1299.99")}
	order := &Order{ID: "O1"}
	order.AddItem(laptop, 1)

	laptop.Price = decimal.RequireFromString("999.99")
	assert.True(t, order.Items[0].LineTotal().Equal(decimal.RequireFromString("999.99")))

	order.RecomputeTotal()
	first := order.TotalPrice
	order.RecomputeTotal()
	assert.True(t, first.Equal(order.TotalPrice))
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("999.99")))
}

func TestOrderReferences(t *testing.T) {
	order := &Order{}
	order.AddItem(&Product{ID: "A"}, 1)

	assert.True(t, order.References("A"))
	assert.False(t, order.References("B"))
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("pending").Valid())
	assert.False(t, OrderStatus("Returned").Valid())
	assert.False(t, OrderStatus("").Valid())
}

package models

type Event interface {
	Type() string
}

type UserCreated struct {
	UserID   string
	Username string
}

func (e UserCreated) Type() string { return "UserCreated" }

type UserUpdated struct {
	UserID   string
	Username string
	Email    string
}

func (e UserUpdated) Type() string { return "UserUpdated" }

type UserDeleted struct {
	UserID string
}

func (e UserDeleted) Type() string { return "UserDeleted" }

type ProductCreated struct {
	ProductID string
	Name      string
}

func (e ProductCreated) Type() string { return "ProductCreated" }

type ProductUpdated struct {
	ProductID string
	Name      string
	// Number of orders whose total was recomputed after the change.
	OrdersRepriced int
}

func (e ProductUpdated) Type() string { return "ProductUpdated" }

type ProductDeleted struct {
	ProductID string
}

func (e ProductDeleted) Type() string { return "ProductDeleted" }

type OrderCreated struct {
	OrderID string
	UserID  string
}

func (e OrderCreated) Type() string { return "OrderCreated" }

type OrderItemAdded struct {
	OrderID   string
	ProductID string
	Quantity  int
}

func (e OrderItemAdded) Type() string { return "OrderItemAdded" }

type OrderStatusChanged struct {
	OrderID   string
	OldStatus OrderStatus
	NewStatus OrderStatus
}

func (e OrderStatusChanged) Type() string { return "OrderStatusChanged" }

package store

import (
	"context"
	"fmt"

	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/models"
)

type CreateOrderRequest struct {
	UserID string
	Items  []OrderItemRequest
}

type OrderItemRequest struct {
	ProductID string
	Quantity  int
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return database.NewValidationError(database.EntityOrder, "quantity", "must be a positive integer")
	}
	return nil
}

// CreateOrder places a Pending order for an existing user. Every product is
// resolved before anything is inserted, so a failed request leaves no order.
func CreateOrder(ctx context.Context, db *database.DB, req CreateOrderRequest) (*models.Order, error) {
	for _, item := range req.Items {
		if err := validateQuantity(item.Quantity); err != nil {
			return nil, err
		}
	}

	var order *models.Order

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.DB) error {
		user, ok := tx.Users.Get(req.UserID)
		if !ok {
			return database.NewNotFoundError(database.EntityUser, req.UserID)
		}

		products := make([]*models.Product, len(req.Items))
		for i, item := range req.Items {
			product, ok := tx.Products.Get(item.ProductID)
			if !ok {
				return database.NewNotFoundError(database.EntityProduct, item.ProductID)
			}
			products[i] = product
		}

		id, err := tx.NextID()
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		row := &models.Order{
			ID:        id,
			User:      user,
			Items:     make([]models.OrderItem, 0, len(req.Items)),
			Status:    models.OrderStatusPending,
			CreatedAt: tx.Now(),
		}
		for i, item := range req.Items {
			row.AddItem(products[i], item.Quantity)
		}

		if err := tx.Orders.Insert(row); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		order = cloneOrder(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func AddOrderItem(ctx context.Context, db *database.DB, orderID, productID string, quantity int) (*models.Order, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	var order *models.Order

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.DB) error {
		row, ok := tx.Orders.Get(orderID)
		if !ok {
			return database.NewNotFoundError(database.EntityOrder, orderID)
		}

		product, ok := tx.Products.Get(productID)
		if !ok {
			return database.NewNotFoundError(database.EntityProduct, productID)
		}

		row.AddItem(product, quantity)
		order = cloneOrder(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrderStatus moves the order to any of the known statuses; no
// transition graph is enforced. It returns the previous status.
func UpdateOrderStatus(ctx context.Context, db *database.DB, orderID string, status models.OrderStatus) (models.OrderStatus, error) {
	if !status.Valid() {
		return "", database.NewValidationError(database.EntityOrder, "status",
			fmt.Sprintf("unknown status %q", status))
	}

	var previous models.OrderStatus

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.DB) error {
		row, ok := tx.Orders.Get(orderID)
		if !ok {
			return database.NewNotFoundError(database.EntityOrder, orderID)
		}

		previous = row.Status
		row.Status = status
		return nil
	})
	if err != nil {
		return "", err
	}

	return previous, nil
}

func GetOrder(ctx context.Context, db *database.DB, id string) (*models.Order, error) {
	var order *models.Order

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		row, ok := tx.Orders.Get(id)
		if !ok {
			return database.NewNotFoundError(database.EntityOrder, id)
		}
		order = cloneOrder(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func ListOrders(ctx context.Context, db *database.DB, page, pageSize int) (*OffsetPage[models.Order], error) {
	var result *OffsetPage[models.Order]

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		result = paginate(tx.Orders, page, pageSize, cloneOrder)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return result, nil
}

// ListOrdersCursor lists a user's orders newest first. Orders are never
// deleted, so an insertion position stays valid as a cursor.
func ListOrdersCursor(ctx context.Context, db *database.DB, userID, cursor string, limit int) (*CursorPage[models.Order], error) {
	cursorData, hasCursor, err := DecodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = 1
	}

	var orders []models.Order
	var positions []int

	err = database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		start := tx.Orders.Len() - 1
		if hasCursor {
			start = cursorData.Position - 1
		}

		rows := tx.Orders.Slice(0, tx.Orders.Len())
		for i := start; i >= 0 && i < len(rows) && len(orders) <= limit; i-- {
			if rows[i].User == nil || rows[i].User.ID != userID {
				continue
			}
			orders = append(orders, *cloneOrder(rows[i]))
			positions = append(positions, i)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	hasMore := len(orders) > limit
	if hasMore {
		orders = orders[:limit]
	}

	var nextCursor string
	if hasMore && len(orders) > 0 {
		last := len(orders) - 1
		nextCursor = EncodeCursor(OrderCursor{
			Position: positions[last],
			ID:       orders[last].ID,
		})
	}

	return &CursorPage[models.Order]{
		Items:      orders,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}, nil
}

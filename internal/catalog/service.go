// Package catalog is the operations API used by front ends. It wraps the
// store with logging, metrics and domain events; it holds no state of its own.
package catalog

import (
	"context"
	"fmt"

	"github.com/safar/go-catalog-store/internal/config"
	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/metrics"
	"github.com/safar/go-catalog-store/internal/models"
	"github.com/safar/go-catalog-store/internal/store"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Service struct {
	db         *database.DB
	cfg        config.StoreConfig
	logger     log.FieldLogger
	dispatcher EventDispatcher
	metrics    *metrics.Metrics
}

func NewService(db *database.DB, cfg config.StoreConfig, logger log.FieldLogger, dispatcher EventDispatcher) *Service {
	s := &Service{
		db:         db,
		cfg:        cfg,
		logger:     logger,
		dispatcher: dispatcher,
	}
	s.metrics = metrics.New(s.Dashboard)
	return s
}

// Open builds a fresh store, seeding it with the sample catalog when configured.
func Open(ctx context.Context, cfg config.StoreConfig, logger log.FieldLogger, dispatcher EventDispatcher, opts ...database.Option) (*Service, error) {
	db := database.New(opts...)

	if cfg.Seed {
		if err := store.Seed(ctx, db); err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
		logger.Info("sample catalog loaded")
	}

	return NewService(db, cfg, logger, dispatcher), nil
}

func (s *Service) Metrics() *metrics.Metrics {
	return s.metrics
}

func (s *Service) CreateUser(ctx context.Context, username, email string) (*models.User, error) {
	user, err := store.CreateUser(ctx, s.db, username, email)
	if s.observe("create_user", err, log.Fields{"username": username}) {
		return nil, err
	}

	s.dispatch(models.UserCreated{UserID: user.ID, Username: user.Username})
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*models.User, error) {
	return store.GetUser(ctx, s.db, id)
}

func (s *Service) UpdateUser(ctx context.Context, id, username, email string) (*models.User, error) {
	user, err := store.UpdateUser(ctx, s.db, id, username, email)
	if s.observe("update_user", err, log.Fields{"user_id": id}) {
		return nil, err
	}

	s.dispatch(models.UserUpdated{UserID: user.ID, Username: user.Username, Email: user.Email})
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	err := store.DeleteUser(ctx, s.db, id, s.cfg.DeletePolicy)
	if s.observe("delete_user", err, log.Fields{"user_id": id}) {
		return err
	}

	s.dispatch(models.UserDeleted{UserID: id})
	return nil
}

func (s *Service) ListUsers(ctx context.Context, page, pageSize int) (*store.OffsetPage[models.User], error) {
	return store.ListUsers(ctx, s.db, page, s.pageSize(pageSize))
}

func (s *Service) CreateProduct(ctx context.Context, name string, price decimal.Decimal, stock int) (*models.Product, error) {
	product, err := store.CreateProduct(ctx, s.db, name, price, stock)
	if s.observe("create_product", err, log.Fields{"name": name}) {
		return nil, err
	}

	s.dispatch(models.ProductCreated{ProductID: product.ID, Name: product.Name})
	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return store.GetProduct(ctx, s.db, id)
}

func (s *Service) UpdateProduct(ctx context.Context, id, name string, price decimal.Decimal, stock int) (*models.Product, error) {
	product, repriced, err := store.UpdateProduct(ctx, s.db, id, name, price, stock)
	if s.observe("update_product", err, log.Fields{"product_id": id, "orders_repriced": repriced}) {
		return nil, err
	}

	s.dispatch(models.ProductUpdated{ProductID: product.ID, Name: product.Name, OrdersRepriced: repriced})
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	err := store.DeleteProduct(ctx, s.db, id, s.cfg.DeletePolicy)
	if s.observe("delete_product", err, log.Fields{"product_id": id}) {
		return err
	}

	s.dispatch(models.ProductDeleted{ProductID: id})
	return nil
}

func (s *Service) ListProducts(ctx context.Context, page, pageSize int) (*store.OffsetPage[models.Product], error) {
	return store.ListProducts(ctx, s.db, page, s.pageSize(pageSize))
}

func (s *Service) CreateOrder(ctx context.Context, userID string, items []store.OrderItemRequest) (*models.Order, error) {
	order, err := store.CreateOrder(ctx, s.db, store.CreateOrderRequest{UserID: userID, Items: items})
	if s.observe("create_order", err, log.Fields{"user_id": userID, "items": len(items)}) {
		return nil, err
	}

	s.dispatch(models.OrderCreated{OrderID: order.ID, UserID: userID})
	return order, nil
}

func (s *Service) AddOrderItem(ctx context.Context, orderID, productID string, quantity int) (*models.Order, error) {
	order, err := store.AddOrderItem(ctx, s.db, orderID, productID, quantity)
	if s.observe("add_order_item", err, log.Fields{"order_id": orderID, "product_id": productID, "quantity": quantity}) {
		return nil, err
	}

	s.dispatch(models.OrderItemAdded{OrderID: orderID, ProductID: productID, Quantity: quantity})
	return order, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	next := models.OrderStatus(status)
	previous, err := store.UpdateOrderStatus(ctx, s.db, orderID, next)
	if s.observe("update_order_status", err, log.Fields{"order_id": orderID, "status": status}) {
		return err
	}

	s.dispatch(models.OrderStatusChanged{OrderID: orderID, OldStatus: previous, NewStatus: next})
	return nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return store.GetOrder(ctx, s.db, id)
}

func (s *Service) ListOrders(ctx context.Context, page, pageSize int) (*store.OffsetPage[models.Order], error) {
	return store.ListOrders(ctx, s.db, page, s.pageSize(pageSize))
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID, cursor string, limit int) (*store.CursorPage[models.Order], error) {
	return store.ListOrdersCursor(ctx, s.db, userID, cursor, s.pageSize(limit))
}

func (s *Service) TotalUsers(ctx context.Context) (int, error) {
	return store.TotalUsers(ctx, s.db)
}

func (s *Service) TotalProducts(ctx context.Context) (int, error) {
	return store.TotalProducts(ctx, s.db)
}

func (s *Service) PendingOrderCount(ctx context.Context) (int, error) {
	return store.PendingOrderCount(ctx, s.db)
}

func (s *Service) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	return store.TotalSales(ctx, s.db)
}

func (s *Service) Dashboard(ctx context.Context) (*store.Stats, error) {
	return store.Dashboard(ctx, s.db)
}

func (s *Service) pageSize(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.cfg.PageSize
}

// observe records the outcome of a mutation and reports whether it failed.
func (s *Service) observe(operation string, err error, fields log.Fields) bool {
	s.metrics.ObserveOperation(operation, err)

	entry := s.logger.WithFields(fields).WithField("operation", operation)
	if err != nil {
		entry.WithError(err).WithField("kind", database.ClassifyError(err).String()).Warn("operation rejected")
		return true
	}

	entry.Info("operation applied")
	return false
}

func (s *Service) dispatch(event models.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.logger.WithError(err).WithField("event", event.Type()).Error("failed to dispatch event")
	}
}

package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/safar/go-catalog-store/internal/catalog"
	"github.com/safar/go-catalog-store/internal/config"
	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = time.Date(2024, time.March, 9, 14, 30, 0, 0, time.UTC)

func setup(t *testing.T) *app {
	t.Helper()

	logger, _ := test.NewNullLogger()
	cfg := config.Default()
	bus := catalog.NewBus()

	svc, err := catalog.Open(context.Background(), cfg.Store, logger, bus, database.WithClock(func() time.Time { return testClock }))
	require.NoError(t, err)
	return &app{svc: svc, bus: bus, cfg: cfg}
}

func run(a *app, stdin string, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func seededOrder(t *testing.T, a *app, status models.OrderStatus) models.Order {
	t.Helper()
	page, err := a.svc.ListOrders(context.Background(), 1, 10)
	require.NoError(t, err)
	for _, o := range page.Items {
		if o.Status == status {
			return o
		}
	}
	t.Fatalf("no %s order in seed", status)
	return models.Order{}
}

func TestDashboard(t *testing.T) {
	a := setup(t)

	out, _, err := run(a, "", "dashboard")
	require.NoError(t, err)
	assert.Regexp(t, `Total Users\s+3`, out)
	assert.Regexp(t, `Total Products\s+4`, out)
	assert.Regexp(t, `Pending Orders\s+1`, out)
	assert.Regexp(t, `Total Sales\s+\$1349\.98`, out)
}

func TestOrdersShow(t *testing.T) {
	a := setup(t)
	order := seededOrder(t, a, models.OrderStatusShipped)

	out, _, err := run(a, "", "orders", "show", order.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Order ID: "+order.ID+"\n")
	assert.Contains(t, out, "User: anoop_v\n")
	assert.Contains(t, out, "Status: Shipped\n")
	assert.Contains(t, out, "Total: $1349.98\n")
	assert.Contains(t, out, "- Laptop Pro (Qty: 1) @ $1299.99 ea.\n")
	assert.Contains(t, out, "- Wireless Mouse (Qty: 1) @ $49.99 ea.\n")
}

func TestOrdersList(t *testing.T) {
	a := setup(t)

	out, _, err := run(a, "", "orders", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Price")
	assert.Contains(t, out, "$917.50")
	assert.Contains(t, out, "2024-03-09 14:30")
	assert.Contains(t, out, "page 1 of 1 (2 total)")
}

func TestOrdersListByUser(t *testing.T) {
	a := setup(t)
	order := seededOrder(t, a, models.OrderStatusPending)

	out, _, err := run(a, "", "orders", "list", "--user", order.User.ID)
	require.NoError(t, err)
	assert.Contains(t, out, order.ID)
	assert.NotContains(t, out, "next cursor")
}

func TestOrderLifecycle(t *testing.T) {
	a := setup(t)
	ctx := context.Background()

	user, err := a.svc.CreateUser(ctx, "bob", "bob@example.com")
	require.NoError(t, err)
	product, err := a.svc.CreateProduct(ctx, "Desk Lamp", decimal.RequireFromString("19.99"), 10)
	require.NoError(t, err)

	out, _, err := run(a, "", "orders", "create", user.ID, product.ID+":3")
	require.NoError(t, err)
	assert.Contains(t, out, "totalling $59.97")

	orders, err := a.svc.ListOrdersByUser(ctx, user.ID, "", 10)
	require.NoError(t, err)
	require.Len(t, orders.Items, 1)
	id := orders.Items[0].ID

	out, _, err = run(a, "", "orders", "add-item", id, product.ID, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "now totals $79.96")

	_, _, err = run(a, "", "orders", "status", id, "Cancelled")
	require.NoError(t, err)

	got, err := a.svc.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, got.Status)
}

func TestCommandErrorsAreClassified(t *testing.T) {
	a := setup(t)

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"bad price", []string{"products", "add", "Lamp", "cheap", "3"}, database.ErrValidation},
		{"bad item", []string{"orders", "create", "ABCD1234", "oops"}, database.ErrValidation},
		{"lowercase status", []string{"orders", "status", "ABCD1234", "shipped"}, database.ErrValidation},
		{"missing user", []string{"users", "remove", "NOPE0000"}, database.ErrUserNotFound},
		{"missing order", []string{"orders", "show", "NOPE0000"}, database.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(a, "", tt.args...)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestMetrics(t *testing.T) {
	a := setup(t)

	out, _, err := run(a, "", "metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog_users 3")
	assert.Contains(t, out, "catalog_pending_orders 1")
}

func TestShell(t *testing.T) {
	a := setup(t)

	stdin := strings.Join([]string{
		`users add "bob" bob@example.com`,
		"",
		"users remove NOPE0000",
		"shell",
		`products add "Desk Lamp" 19.99`,
		"exit",
		"dashboard",
	}, "\n")

	out, errOut, err := run(a, stdin, "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "Created user")
	assert.Contains(t, out, "[UserCreated] users: 4 | products: 4 | pending: 1 | sales: $1349.98")
	assert.NotContains(t, out, "Total Users")

	assert.Contains(t, errOut, `error (not_found): user "NOPE0000" not found`)
	assert.Contains(t, errOut, "already in a shell")
	assert.Contains(t, errOut, "accepts 3 arg(s), received 2")
}

func TestShellUnbalancedQuotes(t *testing.T) {
	a := setup(t)

	_, errOut, err := run(a, "users add \"bob\n", "shell")
	require.NoError(t, err)
	assert.Contains(t, errOut, "error (internal): parse")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, ExitCode(database.NewValidationError(database.EntityUser, "email", "must not be empty")))
	assert.Equal(t, 3, ExitCode(database.NewNotFoundError(database.EntityOrder, "NOPE0000")))
	assert.Equal(t, 1, ExitCode(assert.AnError))
}

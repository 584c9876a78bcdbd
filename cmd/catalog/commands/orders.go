package commands

import (
	"fmt"
	"strings"

	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/store"
	"github.com/spf13/cobra"
)

func ordersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders",
	}
	cmd.AddCommand(
		ordersListCmd(a),
		ordersShowCmd(a),
		ordersCreateCmd(a),
		ordersAddItemCmd(a),
		ordersStatusCmd(a),
	)
	return cmd
}

func ordersListCmd(a *app) *cobra.Command {
	var (
		page, pageSize int
		userID, cursor string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, or one user's orders newest first with --user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if userID == "" {
				orders, err := a.svc.ListOrders(cmd.Context(), page, pageSize)
				if err != nil {
					return err
				}
				if err := renderOrders(out, orders.Items); err != nil {
					return err
				}
				pageFooter(out, orders.Page, orders.TotalPages, orders.Total)
				return nil
			}

			orders, err := a.svc.ListOrdersByUser(cmd.Context(), userID, cursor, pageSize)
			if err != nil {
				return err
			}
			if err := renderOrders(out, orders.Items); err != nil {
				return err
			}
			if orders.HasMore {
				fmt.Fprintf(out, "next cursor: %s\n", orders.NextCursor)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (default from CATALOG_STORE_PAGE_SIZE)")
	cmd.Flags().StringVar(&userID, "user", "", "only orders placed by this user")
	cmd.Flags().StringVar(&cursor, "cursor", "", "resume a --user listing")
	return cmd
}

func ordersShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Print an order with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.svc.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderOrderDetails(cmd.OutOrStdout(), order)
			return nil
		},
	}
}

func ordersCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create [user-id] [product-id:quantity]...",
		Short: "Place a Pending order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]store.OrderItemRequest, 0, len(args)-1)
			for _, arg := range args[1:] {
				item, err := parseItem(arg)
				if err != nil {
					return err
				}
				items = append(items, item)
			}

			order, err := a.svc.CreateOrder(cmd.Context(), args[0], items)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created order %s totalling %s\n", order.ID, money(order.TotalPrice))
			return nil
		},
	}
}

func ordersAddItemCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-item [order-id] [product-id] [quantity]",
		Short: "Append a line item to an order",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseCount(database.EntityOrder, "quantity", args[2])
			if err != nil {
				return err
			}

			order, err := a.svc.AddOrderItem(cmd.Context(), args[0], args[1], quantity)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s now totals %s\n", order.ID, money(order.TotalPrice))
			return nil
		},
	}
}

func ordersStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "status [order-id] [status]",
		Short:     "Set an order's status",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"Pending", "Shipped", "Delivered", "Cancelled"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.svc.UpdateOrderStatus(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s\n", args[0], args[1])
			return nil
		},
	}
}

// parseItem reads a product-id:quantity pair.
func parseItem(raw string) (store.OrderItemRequest, error) {
	productID, qty, ok := strings.Cut(raw, ":")
	if !ok || productID == "" {
		return store.OrderItemRequest{}, database.NewValidationError(database.EntityOrder, "item", "expected product-id:quantity")
	}

	quantity, err := parseCount(database.EntityOrder, "quantity", qty)
	if err != nil {
		return store.OrderItemRequest{}, err
	}
	return store.OrderItemRequest{ProductID: productID, Quantity: quantity}, nil
}

package commands

import (
	"fmt"

	"github.com/safar/go-catalog-store/internal/database"
	"github.com/spf13/cobra"
)

func productsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage products",
	}
	cmd.AddCommand(productsListCmd(a), productsAddCmd(a), productsEditCmd(a), productsRemoveCmd(a))
	return cmd
}

func productsListCmd(a *app) *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.svc.ListProducts(cmd.Context(), page, pageSize)
			if err != nil {
				return err
			}
			return renderProducts(cmd.OutOrStdout(), products)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (default from CATALOG_STORE_PAGE_SIZE)")
	return cmd
}

func productsAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name] [price] [stock]",
		Short: "Create a product",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parsePrice(args[1])
			if err != nil {
				return err
			}
			stock, err := parseCount(database.EntityProduct, "stock", args[2])
			if err != nil {
				return err
			}

			product, err := a.svc.CreateProduct(cmd.Context(), args[0], price, stock)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created product %s (%s)\n", product.ID, product.Name)
			return nil
		},
	}
}

func productsEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [id] [name] [price] [stock]",
		Short: "Replace a product's name, price and stock",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parsePrice(args[2])
			if err != nil {
				return err
			}
			stock, err := parseCount(database.EntityProduct, "stock", args[3])
			if err != nil {
				return err
			}

			product, err := a.svc.UpdateProduct(cmd.Context(), args[0], args[1], price, stock)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated product %s (%s)\n", product.ID, product.Name)
			return nil
		},
	}
}

func productsRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [id]",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.svc.DeleteProduct(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted product %s\n", args[0])
			return nil
		},
	}
}

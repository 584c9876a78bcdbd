package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/safar/go-catalog-store/internal/config"
	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/models"
	"github.com/shopspring/decimal"
)

func validateProduct(name string, price decimal.Decimal, stock int) (string, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return "", database.NewValidationError(database.EntityProduct, "name", "must not be empty")
	}
	if price.IsNegative() {
		return "", database.NewValidationError(database.EntityProduct, "price", "must not be negative")
	}
	if stock < 0 {
		return "", database.NewValidationError(database.EntityProduct, "stock", "must not be negative")
	}

	return name, nil
}

func CreateProduct(ctx context.Context, db *database.DB, name string, price decimal.Decimal, stock int) (*models.Product, error) {
	name, err := validateProduct(name, price, stock)
	if err != nil {
		return nil, err
	}

	var product *models.Product
	err = database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.DB) error {
		id, err := tx.NextID()
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}

		row := &models.Product{ID: id, Name: name, Price: price, Stock: stock}
		if err := tx.Products.Insert(row); err != nil {
			return fmt.Errorf("create product: %w", err)
		}

		product = cloneProduct(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func GetProduct(ctx context.Context, db *database.DB, id string) (*models.Product, error) {
	var product *models.Product

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		row, ok := tx.Products.Get(id)
		if !ok {
			return database.NewNotFoundError(database.EntityProduct, id)
		}
		product = cloneProduct(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct edits the product in place. Orders hold the same product, so
// every order containing it gets its total recomputed; repriced is how many.
func UpdateProduct(ctx context.Context, db *database.DB, id, name string, price decimal.Decimal, stock int) (product *models.Product, repriced int, err error) {
	name, err = validateProduct(name, price, stock)
	if err != nil {
		return nil, 0, err
	}

	err = database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.DB) error {
		row, ok := tx.Products.Get(id)
		if !ok {
			return database.NewNotFoundError(database.EntityProduct, id)
		}

		row.Name = name
		row.Price = price
		row.Stock = stock

		tx.Orders.Scan(func(o *models.Order) bool {
			if o.References(id) {
				o.RecomputeTotal()
				repriced++
			}
			return true
		})

		product = cloneProduct(row)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return product, repriced, nil
}

// DeleteProduct removes the product. Under the permissive policy line items
// keep pointing at the removed record and still count toward order totals.
func DeleteProduct(ctx context.Context, db *database.DB, id string, policy config.DeletePolicy) error {
	return database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.DB) error {
		if _, ok := tx.Products.Get(id); !ok {
			return database.NewNotFoundError(database.EntityProduct, id)
		}

		if policy == config.DeletePolicyRestrict {
			refs := 0
			tx.Orders.Scan(func(o *models.Order) bool {
				if o.References(id) {
					refs++
				}
				return true
			})
			if refs > 0 {
				return database.NewValidationError(database.EntityProduct, "id",
					fmt.Sprintf("referenced by %d order(s)", refs))
			}
		}

		tx.Products.Delete(id)
		return nil
	})
}

func ListProducts(ctx context.Context, db *database.DB, page, pageSize int) (*OffsetPage[models.Product], error) {
	var result *OffsetPage[models.Product]

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		result = paginate(tx.Products, page, pageSize, cloneProduct)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return result, nil
}

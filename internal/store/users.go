package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/safar/go-catalog-store/internal/config"
	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/models"
)

func validateUser(username, email string) (string, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return "", "", database.NewValidationError(database.EntityUser, "username", "must not be empty")
	}
	if email == "" {
		return "", "", database.NewValidationError(database.EntityUser, "email", "must not be empty")
	}

	return username, email, nil
}

func CreateUser(ctx context.Context, db *database.DB, username, email string) (*models.User, error) {
	username, email, err := validateUser(username, email)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.DB) error {
		id, err := tx.NextID()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		row := &models.User{ID: id, Username: username, Email: email}
		if err := tx.Users.Insert(row); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		user = cloneUser(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func GetUser(ctx context.Context, db *database.DB, id string) (*models.User, error) {
	var user *models.User

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		row, ok := tx.Users.Get(id)
		if !ok {
			return database.NewNotFoundError(database.EntityUser, id)
		}
		user = cloneUser(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func UpdateUser(ctx context.Context, db *database.DB, id, username, email string) (*models.User, error) {
	username, email, err := validateUser(username, email)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.DB) error {
		row, ok := tx.Users.Get(id)
		if !ok {
			return database.NewNotFoundError(database.EntityUser, id)
		}

		row.Username = username
		row.Email = email
		user = cloneUser(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the user. Under the permissive policy orders placed by
// the user keep pointing at the removed record.
func DeleteUser(ctx context.Context, db *database.DB, id string, policy config.DeletePolicy) error {
	return database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.DB) error {
		if _, ok := tx.Users.Get(id); !ok {
			return database.NewNotFoundError(database.EntityUser, id)
		}

		if policy == config.DeletePolicyRestrict {
			refs := 0
			tx.Orders.Scan(func(o *models.Order) bool {
				if o.User != nil && o.User.ID == id {
					refs++
				}
				return true
			})
			if refs > 0 {
				return database.NewValidationError(database.EntityUser, "id",
					fmt.Sprintf("referenced by %d order(s)", refs))
			}
		}

		tx.Users.Delete(id)
		return nil
	})
}

func ListUsers(ctx context.Context, db *database.DB, page, pageSize int) (*OffsetPage[models.User], error) {
	var result *OffsetPage[models.User]

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.DB) error {
		result = paginate(tx.Users, page, pageSize, cloneUser)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return result, nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func usersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}
	cmd.AddCommand(usersListCmd(a), usersAddCmd(a), usersEditCmd(a), usersRemoveCmd(a))
	return cmd
}

func usersListCmd(a *app) *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.svc.ListUsers(cmd.Context(), page, pageSize)
			if err != nil {
				return err
			}
			return renderUsers(cmd.OutOrStdout(), users)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (default from CATALOG_STORE_PAGE_SIZE)")
	return cmd
}

func usersAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add [username] [email]",
		Short: "Create a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.svc.CreateUser(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", user.ID, user.Username)
			return nil
		},
	}
}

func usersEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [id] [username] [email]",
		Short: "Replace a user's username and email",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.svc.UpdateUser(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s (%s)\n", user.ID, user.Username)
			return nil
		},
	}
}

func usersRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [id]",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.svc.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", args[0])
			return nil
		},
	}
}

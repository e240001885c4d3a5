// usersadmin manages user accounts directly against the inventory database,
// outside the HTTP surface. It shares the schema contract with the server.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soclog/change-inventory/database"
	"github.com/soclog/change-inventory/models"
	"github.com/soclog/change-inventory/password"
	"github.com/soclog/change-inventory/repositories"
)

var dbPath string

func main() {
	rootCmd := &cobra.Command{
		Use:          "usersadmin",
		Short:        "Manage change inventory user accounts",
		SilenceUsage: true,
	}

	defaultDB := os.Getenv("DATABASE")
	if defaultDB == "" {
		defaultDB = "data/inventory.db"
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to the inventory database")

	rootCmd.AddCommand(listCmd(), addCmd(), passwdCmd(), deleteCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openRepo opens the database and returns the user repository. The database
// must already exist; this tool never bootstraps the schema on a wrong path.
func openRepo() (repositories.UserRepository, *sql.DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, nil, fmt.Errorf("database %s does not exist; start the server once to create it", dbPath)
	}

	db, err := database.InitializeDatabase(dbPath)
	if err != nil {
		return nil, nil, err
	}

	return repositories.NewUserRepository(db), db, nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all user accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, db, err := openRepo()
			if err != nil {
				return err
			}
			defer db.Close()

			users, err := repo.GetAll(context.Background())
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No users found")
				return nil
			}

			for _, user := range users {
				fmt.Printf("%d\t%s\tcreated %s\n", user.ID, user.Username, user.CreatedAt.Format("2006-01-02 15:04"))
			}
			fmt.Printf("Total: %d user(s)\n", len(users))
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <username> <password>",
		Short: "Add a new user account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, plaintext := args[0], args[1]
			if len(plaintext) < models.MinPasswordLength {
				return models.ErrWeakPassword
			}

			repo, db, err := openRepo()
			if err != nil {
				return err
			}
			defer db.Close()

			hash, err := password.Hash(plaintext)
			if err != nil {
				return err
			}

			user := &models.User{Username: username, PasswordHash: hash}
			if err := repo.Create(context.Background(), user); err != nil {
				if errors.Is(err, models.ErrDuplicateName) {
					return fmt.Errorf("user %q already exists", username)
				}
				return err
			}

			fmt.Printf("Created user %q (id %d)\n", username, user.ID)
			return nil
		},
	}
}

func passwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd <username> <new-password>",
		Short: "Change a user's password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, plaintext := args[0], args[1]
			if len(plaintext) < models.MinPasswordLength {
				return models.ErrWeakPassword
			}

			repo, db, err := openRepo()
			if err != nil {
				return err
			}
			defer db.Close()

			user, err := repo.GetByUsername(context.Background(), username)
			if err != nil {
				if errors.Is(err, models.ErrNotFound) {
					return fmt.Errorf("user %q does not exist", username)
				}
				return err
			}

			hash, err := password.Hash(plaintext)
			if err != nil {
				return err
			}

			if err := repo.UpdatePassword(context.Background(), user.ID, hash); err != nil {
				return err
			}

			fmt.Printf("Password updated for user %q\n", username)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			repo, db, err := openRepo()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repo.DeleteByUsername(context.Background(), username); err != nil {
				if errors.Is(err, models.ErrNotFound) {
					return fmt.Errorf("user %q does not exist", username)
				}
				return err
			}

			fmt.Printf("Deleted user %q\n", username)
			return nil
		},
	}
}

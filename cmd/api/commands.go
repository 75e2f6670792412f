package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recyclehero/recyclehero-golang/internal/config"
	"github.com/recyclehero/recyclehero-golang/internal/database"
	"github.com/recyclehero/recyclehero-golang/internal/models"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := database.Migrate(cfg.DatabaseDSN); err != nil {
			return err
		}
		fmt.Println("Migrations applied")
		return nil
	},
}

var (
	adminUsername string
	adminEmail    string
	adminPassword string
)

// Roles are admin-managed and never exposed over HTTP, so the first (and
// any further) admin account is provisioned from the command line.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		db, err := database.OpenDB(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		var password models.Password
		if err := password.Set(adminPassword); err != nil {
			return err
		}

		var admin models.User
		err = db.QueryRowx(`
			INSERT INTO users (username, email, password_hash, role)
			VALUES ($1, $2, $3, 'admin')
			RETURNING id, username, role`,
			adminUsername, adminEmail, password.Hash,
		).Scan(&admin.ID, &admin.Username, &admin.Role)
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		fmt.Printf("Admin created: id=%d username=%s role=%s\n", admin.ID, admin.Username, admin.Role)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "", "admin username")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
	createAdminCmd.MarkFlagRequired("username")
	createAdminCmd.MarkFlagRequired("email")
	createAdminCmd.MarkFlagRequired("password")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CryptoTanAI/TechBlog/pkg/db"
	storegorm "github.com/CryptoTanAI/TechBlog/pkg/server/store/gorm"
)

// adminResetPasswordCmd represents the admin reset-password command
var adminResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <username>",
	Short: "Reset an admin user's password",
	Long: `Reset an admin user's password.

The new password is read from the TECHSOUTH_ADMIN_PASSWORD environment
variable so it never appears in shell history or process listings.

Example:
  TECHSOUTH_ADMIN_PASSWORD=changeme techsouthctl admin reset-password admin`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := resetAdminPassword(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reset password: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	adminCmd.AddCommand(adminResetPasswordCmd)
}

func resetAdminPassword(username string) error {
	password, ok := os.LookupEnv("TECHSOUTH_ADMIN_PASSWORD")
	if !ok || password == "" {
		return fmt.Errorf("TECHSOUTH_ADMIN_PASSWORD environment variable is required")
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	users := storegorm.NewUsersStore(database)
	user, err := users.GetByUsername(username)
	if err != nil {
		return err
	}

	if err := user.SetPassword(password); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := users.Update(user); err != nil {
		return err
	}

	fmt.Printf("Password updated for %q\n", username)
	return nil
}

/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/policy-insights-be/database"
	"github.com/tieubaoca/policy-insights-be/repository"
	"github.com/tieubaoca/policy-insights-be/service"
	"github.com/tieubaoca/policy-insights-be/types"
)

// createUserCmd represents the createUser command
var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Seed a login account",
	Run: func(cmd *cobra.Command, args []string) {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		fullName, _ := cmd.Flags().GetString("full-name")
		admin, _ := cmd.Flags().GetBool("admin")

		store, err := database.NewStore(dataDir)
		if err != nil {
			log.Fatalf("Failed to open store: %v", err)
		}
		defer store.Close()

		role := types.USER_ROLE_USER
		if admin {
			role = types.USER_ROLE_ADMIN
		}

		userService := service.NewUserService(repository.NewUserRepo(store))
		user := &types.User{
			Username: username,
			Password: password,
			FullName: fullName,
			Role:     role,
		}
		if err := userService.CreateUser(context.Background(), user); err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		fmt.Println("Created user", user.Username, "with id", user.ID)
	},
}

func init() {
	rootCmd.AddCommand(createUserCmd)

	createUserCmd.Flags().StringP("data-dir", "d", "data", "Data directory of the store")
	createUserCmd.Flags().StringP("username", "u", "", "Username")
	createUserCmd.Flags().StringP("password", "p", "", "Password")
	createUserCmd.Flags().String("full-name", "", "Full name")
	createUserCmd.Flags().Bool("admin", false, "Grant the admin role")
	createUserCmd.MarkFlagRequired("username")
	createUserCmd.MarkFlagRequired("password")
}

package main

import (
	"fmt"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/SscSPs/adaptation_plan_app/internal/core/services"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
	"github.com/SscSPs/adaptation_plan_app/internal/handlers"
	"github.com/SscSPs/adaptation_plan_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/adaptation_plan_app/pkg/database"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

// systemActor provisions accounts from the command line, where no logged-in hr user exists.
var systemActor = domain.Actor{UserID: "system", Role: domain.RoleHR}

var newUser dto.CreateUserRequest

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	Long:  "Creates a user directly in the database. Use it to provision the first hr account.",
	Args:  cobra.NoArgs,
	RunE:  runUserCreate,
}

func init() {
	f := userCreateCmd.Flags()
	f.StringVar(&newUser.Username, "username", "", "Login name")
	f.StringVar(&newUser.Password, "password", "", "Initial password")
	f.StringVar(&newUser.Name, "name", "", "Display name")
	f.StringVar(&newUser.Email, "email", "", "Email address")
	f.StringVar(&newUser.Role, "role", string(domain.RoleHR), "One of employee, supervisor, hr")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("password")
	_ = userCreateCmd.MarkFlagRequired("name")

	userCmd.AddCommand(userCreateCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	if err := validateCreateUser(newUser); err != nil {
		return err
	}

	dbPool, err := database.NewPgxPool(cmd.Context(), cfg.DatabaseURL, true)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	user, err := services.NewUserService(repos.UserRepo).CreateUser(cmd.Context(), systemActor, newUser)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s user %s (%s)\n", user.Role, user.Username, user.UserID)
	return nil
}

// validateCreateUser applies the same binding rules the HTTP API uses.
func validateCreateUser(req dto.CreateUserRequest) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	if err := v.RegisterValidation("plan_role", handlers.ValidatePlanRole); err != nil {
		return err
	}
	if err := v.Struct(req); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}
	return nil
}

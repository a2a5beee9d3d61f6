package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/flexmobile/shop/internal/adapters/repository"
	"github.com/flexmobile/shop/internal/application/services"
	"github.com/flexmobile/shop/internal/infrastructure/auth"
	"github.com/flexmobile/shop/internal/infrastructure/config"
	"github.com/flexmobile/shop/internal/infrastructure/logger"
	"github.com/flexmobile/shop/internal/infrastructure/server"
	"github.com/flexmobile/shop/internal/infrastructure/store"
	"github.com/flexmobile/shop/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront server",
		Long:  "Start the storefront server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewUserCommand creates the user management command
func NewUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Admin user management commands",
		Long:  "Create additional admin users in the store",
	}

	createUserCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new admin user",
		Run: func(cmd *cobra.Command, args []string) {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")

			if email == "" || password == "" {
				log.Fatal("Email and password are required")
			}

			createUser(email, password, name)
		},
	}

	createUserCmd.Flags().String("email", "", "User email (required)")
	createUserCmd.Flags().String("password", "", "User password (required)")
	createUserCmd.Flags().String("name", "Admin", "User display name")

	userCmd.AddCommand(createUserCmd)
	return userCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print FlexMobile Shop version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("FlexMobile Shop v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	st, err := store.New(cfg.Store.Dir, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open document store", "error", err)
	}

	srv, err := server.New(cfg, st, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting storefront server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"store_dir", cfg.Store.Dir,
	)

	if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		appLogger.Fatal("Server failed to start", "error", err)
	}
}

func createUser(email, password, name string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	st, err := store.New(cfg.Store.Dir, appLogger)
	if err != nil {
		log.Fatalf("Failed to open document store: %v", err)
	}

	userRepo := repository.NewUserRepository(st)
	hasher := auth.NewPasswordHasher()
	sessions := auth.NewSessionManager(cfg.Session)
	authService := services.NewAuthService(userRepo, hasher, sessions, appLogger)

	user, err := authService.CreateUser(context.Background(), ports.CreateUserRequest{
		Email:    email,
		Name:     name,
		Password: password,
	})
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("User created successfully:\n")
	fmt.Printf("  ID: %s\n", user.ID)
	fmt.Printf("  Email: %s\n", user.Email)
	fmt.Printf("  Name: %s\n", user.Name)
}

package createuser

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	authusecases "github.com/pharris560/ace-attendance/internal/application/auth/usecases"
	"github.com/pharris560/ace-attendance/internal/infrastructure/auth"
	"github.com/pharris560/ace-attendance/internal/infrastructure/config"
	"github.com/pharris560/ace-attendance/internal/infrastructure/database"
	"github.com/pharris560/ace-attendance/internal/infrastructure/repository"
	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

var (
	env      string
	username string
	fullName string
	email    string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account from the terminal",
		Long:  `Create an account directly against the configured database, prompting for the password without echo.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "production", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username for the new account (required)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Display name for the new account")
	cmd.Flags().StringVar(&email, "email", "", "Email for the new account")
	cmd.MarkFlagRequired("username")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Timezone); err != nil {
		return fmt.Errorf("failed to initialize timezone: %w", err)
	}

	if cfg.Database.Driver == "memory" {
		return fmt.Errorf("the memory driver does not persist accounts, configure sqlite or mysql")
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := promptPassword()
	if err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(database.Get())
	hasher := auth.NewPBKDF2PasswordHasher(cfg.Auth.Password.Iterations)
	registerUC := authusecases.NewRegisterUserUseCase(userRepo, hasher, log)

	created, err := registerUC.Execute(cmd.Context(), authusecases.RegisterUserCommand{
		Username: username,
		Password: password,
		FullName: fullName,
		Email:    email,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("created user %s (%s)\n", created.Username, created.ID)
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(password), nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pharris560/ace-attendance/internal/interfaces/cli/createuser"
	"github.com/pharris560/ace-attendance/internal/interfaces/cli/migrate"
	"github.com/pharris560/ace-attendance/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ace",
		Short: "ACE attendance administration service",
		Long:  `ACE serves class, student and attendance administration with session and API key authentication.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		createuser.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

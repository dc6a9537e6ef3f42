package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opsdesk-inc/opsdesk/internal/interfaces/cli/migrate"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "opsdesk",
		Short: "OpsDesk - internal support request tracker",
		Long:  `OpsDesk tracks internal support requests, builds a knowledge base from resolved ones, and uses AI to classify, draft replies, and summarize.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

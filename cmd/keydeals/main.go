package main

import (
	"os"

	"github.com/spf13/cobra"

	"keydeals/internal/interfaces/cli/migrate"
	"keydeals/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "keydeals",
		Short: "Keydeals - locksmith marketplace deal platform",
		Long:  `Keydeals serves the public deal storefront, the retailer dashboard, and the operator console, with built-in migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

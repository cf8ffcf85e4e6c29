package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "portafolio",
		Short: "Andres Osorio's portfolio site and contact relay",
		Long: `portafolio serves the portfolio site with its contact form, and the relay that
forwards contact messages to the owner's inbox.

Configuration is read from the environment and from a .env file in the working directory.`,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newRelayCmd(), newMigrateCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Command manage provisions spaces: creation, deletion, and Telegram
// announcement settings. It talks to the same database as the API server.
package main

import (
	"fmt"
	"os"

	"github.com/modeemi/spacestatus/dependency"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "manage",
		Short:         "Administer spacestatus spaces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCreateSpaceCmd())
	rootCmd.AddCommand(newDeleteSpaceCmd())
	rootCmd.AddCommand(newSetTelegramCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openAdmin initializes config, logging and the database the same way the
// API server does, minus the HTTP surface.
func openAdmin() (*dependency.Container, error) {
	return dependency.NewAdminContainer()
}

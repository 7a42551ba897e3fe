package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// adminCmd holds the management commands. They live outside rootCmd so that
// every target, including "history" or "help", reaches the search.
var adminCmd = &cobra.Command{
	Use:          "vff-admin",
	Short:        "vff-admin manages vff's search history and defaults",
	SilenceUsage: true,
}

// ExecuteAdmin executes the management command tree.
func ExecuteAdmin() {
	if err := adminCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

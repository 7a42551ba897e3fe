package cmd

import (
	"fmt"

	"github.com/VoxDroid/vff/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vff %s\n", version.Version)
	},
}

func init() {
	adminCmd.AddCommand(versionCmd)
}

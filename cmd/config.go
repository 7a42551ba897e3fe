package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/vff/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted search defaults",
	Long:  "Manage the defaults used by `vff` when the corresponding flag is not given.",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := config.LoadSettings()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "algorithm=%s\n", s.Algorithm)
		fmt.Fprintf(out, "max_results=%d\n", s.MaxResults)
		fmt.Fprintf(out, "group=%s\n", strconv.FormatBool(s.GroupComplete()))
		fmt.Fprintf(out, "color=%s\n", s.Color)
		fmt.Fprintf(out, "record=%s\n", strconv.FormatBool(s.Record))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a default",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.LoadSettings()
		if err != nil {
			return err
		}
		if err := s.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.SaveSettings(s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "set %s=%s\n", args[0], args[1])
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.ResetSettings(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "restored built-in defaults")
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := config.SettingsPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configPathCmd)
	adminCmd.AddCommand(configCmd)
}

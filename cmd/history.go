package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/vff/internal/db"
	"github.com/VoxDroid/vff/internal/history"
	"github.com/VoxDroid/vff/internal/utils"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded searches",
	Long:  "Show searches recorded with --record, newest first. Example:\n  vff-admin history --filter grk --limit 5",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		filter, _ := cmd.Flags().GetString("filter")

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		r := history.NewRepository(dbConn)
		defer func() { _ = r.Close() }()

		entries, err := r.Search(filter, limit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "no recorded searches")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%d\t%s\t%s\t%q\t%d/%d complete", e.ID, e.CreatedAt, e.Algorithm, e.Target, e.CompleteCount, e.LineCount)
			if e.BestLine.Valid {
				fmt.Fprintf(out, "\tbest %q (%d)", e.BestLine.String, e.BestDistance.Int64)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded searches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()
		if !yes && !utils.Confirm(out, cmd.InOrStdin(), "Delete all recorded searches?") {
			fmt.Fprintln(out, "aborted")
			return nil
		}

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		r := history.NewRepository(dbConn)
		defer func() { _ = r.Close() }()

		n, err := r.Clear()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "cleared %d searches\n", n)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "l", 20, "Maximum number of entries (0 = all)")
	historyCmd.Flags().String("filter", "", "Fuzzy filter on the searched target")
	historyClearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	historyCmd.AddCommand(historyClearCmd)
	adminCmd.AddCommand(historyCmd)
}
